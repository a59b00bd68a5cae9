// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"testing"

	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindVisitor struct{}

func (kindVisitor) Hero(models.HeroSection) string         { return "hero" }
func (kindVisitor) Text(models.TextSection) string         { return "text" }
func (kindVisitor) Features(models.FeaturesSection) string { return "features" }
func (kindVisitor) Team(models.TeamSection) string         { return "team" }
func (kindVisitor) CTA(models.CTASection) string           { return "cta" }
func (kindVisitor) News(models.NewsSection) string         { return "news" }

func TestVisit(t *testing.T) {
	sections := []models.Section{
		{Kind: models.SectionHero, Hero: &models.HeroSection{}},
		{Kind: models.SectionText, Text: &models.TextSection{}},
		{Kind: models.SectionFeatures, Features: &models.FeaturesSection{}},
		{Kind: models.SectionTeam, Team: &models.TeamSection{}},
		{Kind: models.SectionCTA, CTA: &models.CTASection{}},
		{Kind: models.SectionNews, News: &models.NewsSection{}},
	}

	for _, s := range sections {
		got, err := Visit[string](s, kindVisitor{})
		require.NoError(t, err)
		assert.Equal(t, string(s.Kind), got)
	}
}

func TestVisit_Errors(t *testing.T) {
	_, err := Visit[string](models.Section{Kind: "carousel"}, kindVisitor{})
	assert.ErrorIs(t, err, ErrUnknownSectionKind)

	_, err = Visit[string](models.Section{Kind: models.SectionTeam}, kindVisitor{})
	assert.ErrorIs(t, err, ErrInvalidSection)
}
