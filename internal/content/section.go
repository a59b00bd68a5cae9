// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"fmt"

	"github.com/MKhiriev/venture-portal/models"
)

// SectionVisitor renders one section kind into T. Adding a kind adds a method,
// so every renderer has to handle it.
type SectionVisitor[T any] interface {
	Hero(models.HeroSection) T
	Text(models.TextSection) T
	Features(models.FeaturesSection) T
	Team(models.TeamSection) T
	CTA(models.CTASection) T
	News(models.NewsSection) T
}

// Visit dispatches s to the matching visitor method.
func Visit[T any](s models.Section, v SectionVisitor[T]) (T, error) {
	var zero T

	if err := ValidateSection(s); err != nil {
		return zero, err
	}

	switch s.Kind {
	case models.SectionHero:
		return v.Hero(*s.Hero), nil
	case models.SectionText:
		return v.Text(*s.Text), nil
	case models.SectionFeatures:
		return v.Features(*s.Features), nil
	case models.SectionTeam:
		return v.Team(*s.Team), nil
	case models.SectionCTA:
		return v.CTA(*s.CTA), nil
	case models.SectionNews:
		return v.News(*s.News), nil
	default:
		return zero, fmt.Errorf("%w: %q", ErrUnknownSectionKind, s.Kind)
	}
}

// ValidateSection checks that the payload for s.Kind is present.
func ValidateSection(s models.Section) error {
	var present bool

	switch s.Kind {
	case models.SectionHero:
		present = s.Hero != nil
	case models.SectionText:
		present = s.Text != nil
	case models.SectionFeatures:
		present = s.Features != nil
	case models.SectionTeam:
		present = s.Team != nil
	case models.SectionCTA:
		present = s.CTA != nil
	case models.SectionNews:
		present = s.News != nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSectionKind, s.Kind)
	}

	if !present {
		return fmt.Errorf("%w: %q", ErrInvalidSection, s.Kind)
	}
	return nil
}
