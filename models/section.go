// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SectionKind tags the variant of a page section.
type SectionKind string

const (
	SectionHero     SectionKind = "hero"
	SectionText     SectionKind = "text"
	SectionFeatures SectionKind = "features"
	SectionTeam     SectionKind = "team"
	SectionCTA      SectionKind = "cta"
	SectionNews     SectionKind = "news"
)

// Section is one block of a content-driven page. Exactly one payload pointer
// matching Kind is set.
type Section struct {
	Kind SectionKind `json:"type"`

	Hero     *HeroSection     `json:"hero,omitempty"`
	Text     *TextSection     `json:"text,omitempty"`
	Features *FeaturesSection `json:"features,omitempty"`
	Team     *TeamSection     `json:"team,omitempty"`
	CTA      *CTASection      `json:"cta,omitempty"`
	News     *NewsSection     `json:"news,omitempty"`
}

type HeroSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type TextSection struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type FeaturesSection struct {
	Heading string    `json:"heading,omitempty"`
	Items   []Feature `json:"items"`
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Bio  string `json:"bio,omitempty"`
}

type TeamSection struct {
	Heading string       `json:"heading,omitempty"`
	Members []TeamMember `json:"members"`
}

type CTASection struct {
	Text   string `json:"text"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

type NewsItem struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

type NewsSection struct {
	Heading string     `json:"heading,omitempty"`
	Items   []NewsItem `json:"items"`
}
