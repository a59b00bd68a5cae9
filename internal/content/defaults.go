// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import "github.com/MKhiriev/venture-portal/models"

const siteName = "Northgate Capital"

func DefaultHome() HomeContent {
	return HomeContent{
		Hero: models.HeroSection{
			Title:    "Backing founders who build what lasts",
			Subtitle: "Early-stage venture capital and advisory for technology companies.",
		},
		Sections: []models.Section{
			{
				Kind: models.SectionFeatures,
				Features: &models.FeaturesSection{
					Heading: "What we do",
					Items: []models.Feature{
						{Title: "Venture investment", Description: "Seed to Series B rounds in software and fintech."},
						{Title: "Asset management", Description: "Managed allocations for qualified investors."},
						{Title: "Consulting", Description: "Go-to-market and fundraising support for portfolio companies."},
					},
				},
			},
			{
				Kind: models.SectionCTA,
				CTA:  &models.CTASection{Text: "Raising a round?", Action: "Pitch us", Target: "startup"},
			},
		},
	}
}

func DefaultFooter() FooterContent {
	return FooterContent{
		Tagline:   "Capital and counsel for ambitious teams.",
		Copyright: "© " + siteName,
		Links: []Link{
			{Label: "About", Href: "/about"},
			{Label: "Services", Href: "/services"},
			{Label: "Contact", Href: "/contact"},
		},
	}
}

func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		SiteName:     siteName,
		ContactEmail: "hello@northgate.example",
	}
}

// DefaultPage returns the fallback for one of the page slots.
func DefaultPage(key string) PageContent {
	switch key {
	case models.SlotAbout:
		return PageContent{Title: "About us", Intro: "We are an independent venture firm partnering with founders from day one."}
	case models.SlotServices:
		return PageContent{Title: "Services", Intro: "Investment, asset management and advisory under one roof."}
	case models.SlotBoard:
		return PageContent{Title: "Board", Intro: "Our partners and advisors."}
	case models.SlotNews:
		return PageContent{Title: "News", Intro: "Announcements from the firm and our portfolio."}
	case models.SlotContact:
		return PageContent{Title: "Contact", Intro: "Tell us about your company or question."}
	default:
		return PageContent{Title: key}
	}
}

// DefaultPayload returns the typed default of a known slot as a raw payload.
// Unknown slots get an empty payload.
func DefaultPayload(key string) models.ContentPayload {
	var (
		payload models.ContentPayload
		err     error
	)

	switch key {
	case models.SlotHome:
		payload, err = Encode(DefaultHome())
	case models.SlotFooter:
		payload, err = Encode(DefaultFooter())
	case models.SlotGlobalSettings:
		payload, err = Encode(DefaultGlobalSettings())
	case models.SlotAbout, models.SlotServices, models.SlotBoard, models.SlotNews, models.SlotContact:
		payload, err = Encode(DefaultPage(key))
	}
	if err != nil || payload == nil {
		return models.ContentPayload{}
	}

	return payload
}
