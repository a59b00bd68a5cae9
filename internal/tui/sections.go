// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/venture-portal/internal/content"
	"github.com/MKhiriev/venture-portal/models"
)

// sectionRenderer renders page sections as plain terminal text.
type sectionRenderer struct{}

var _ content.SectionVisitor[string] = sectionRenderer{}

func (sectionRenderer) Hero(s models.HeroSection) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title))
	if s.Subtitle != "" {
		b.WriteString("\n")
		b.WriteString(s.Subtitle)
	}
	return b.String()
}

func (sectionRenderer) Text(s models.TextSection) string {
	return withHeading(s.Heading, s.Body)
}

func (sectionRenderer) Features(s models.FeaturesSection) string {
	lines := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		line := "• " + item.Title
		if item.Description != "" {
			line += " - " + item.Description
		}
		lines = append(lines, line)
	}
	return withHeading(s.Heading, strings.Join(lines, "\n"))
}

func (sectionRenderer) Team(s models.TeamSection) string {
	lines := make([]string, 0, len(s.Members))
	for _, m := range s.Members {
		line := m.Name
		if m.Role != "" {
			line += ", " + m.Role
		}
		if m.Bio != "" {
			line += "\n  " + m.Bio
		}
		lines = append(lines, line)
	}
	return withHeading(s.Heading, strings.Join(lines, "\n"))
}

func (sectionRenderer) CTA(s models.CTASection) string {
	line := s.Text + " [" + s.Action + "]"
	if s.Target != "" {
		line += " " + formLocation(s.Target)
	}
	return line
}

func (sectionRenderer) News(s models.NewsSection) string {
	lines := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		line := item.Date + "  " + item.Title
		if item.Summary != "" {
			line += "\n  " + item.Summary
		}
		lines = append(lines, line)
	}
	return withHeading(s.Heading, strings.Join(lines, "\n"))
}

func withHeading(heading, body string) string {
	if heading == "" {
		return body
	}
	return titleStyle.Render(heading) + "\n" + body
}

// renderSections renders every valid section. Malformed sections are skipped.
func renderSections(sections []models.Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		out, err := content.Visit[string](s, sectionRenderer{})
		if err != nil {
			continue
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n\n")
}

// firstCTATarget returns the form a page's call to action points at.
func firstCTATarget(sections []models.Section) string {
	for _, s := range sections {
		if s.Kind == models.SectionCTA && s.CTA != nil && s.CTA.Target != "" {
			return s.CTA.Target
		}
	}
	return ""
}
