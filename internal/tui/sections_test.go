// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderSections(t *testing.T) {
	sections := []models.Section{
		{Kind: models.SectionText, Text: &models.TextSection{Heading: "Thesis", Body: "We back infrastructure."}},
		{Kind: models.SectionTeam, Team: &models.TeamSection{Members: []models.TeamMember{{Name: "Grace", Role: "Partner"}}}},
		{Kind: models.SectionNews, News: &models.NewsSection{Items: []models.NewsItem{{Date: "2026-01-10", Title: "Fund II closed"}}}},
		{Kind: models.SectionCTA, CTA: &models.CTASection{Text: "Raising?", Action: "Pitch us", Target: "startup"}},
		// malformed: kind without payload
		{Kind: models.SectionFeatures},
		{Kind: "carousel"},
	}

	out := renderSections(sections)

	assert.Contains(t, out, "Thesis")
	assert.Contains(t, out, "We back infrastructure.")
	assert.Contains(t, out, "Grace, Partner")
	assert.Contains(t, out, "2026-01-10  Fund II closed")
	assert.Contains(t, out, "Raising? [Pitch us] /forms/startup")
	assert.NotContains(t, out, "carousel")
}

func TestFirstCTATarget(t *testing.T) {
	assert.Equal(t, "", firstCTATarget(nil))
	assert.Equal(t, "gig", firstCTATarget([]models.Section{
		{Kind: models.SectionCTA, CTA: &models.CTASection{Text: "x", Action: "y"}},
		{Kind: models.SectionCTA, CTA: &models.CTASection{Text: "x", Action: "y", Target: "gig"}},
	}))
}

func TestSectionRenderer_Features(t *testing.T) {
	out := sectionRenderer{}.Features(models.FeaturesSection{
		Items: []models.Feature{{Title: "Seed"}, {Title: "Growth", Description: "Series B"}},
	})
	assert.Equal(t, "• Seed\n• Growth - Series B", out)
}
