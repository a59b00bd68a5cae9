// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/venture-portal/models"
)

// Form types served by the default catalog.
const (
	TypeContact    = "contact"
	TypeConsulting = "consulting"
	TypeAUM        = "aum"
	TypeGIG        = "gig"
	TypeStartup    = "startup"
)

// Catalog is an ordered, read-only set of form definitions keyed by type.
type Catalog struct {
	order []string
	defs  map[string]models.FormDefinition
}

// NewCatalog validates every definition and indexes it by type.
func NewCatalog(defs ...models.FormDefinition) (*Catalog, error) {
	c := &Catalog{defs: make(map[string]models.FormDefinition, len(defs))}

	var errs []error
	for _, def := range defs {
		if strings.TrimSpace(def.Type) == "" {
			errs = append(errs, fmt.Errorf("%w: %q", ErrEmptyFormType, def.Title))
			continue
		}
		if _, dup := c.defs[def.Type]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateFormType, def.Type))
			continue
		}
		if err := ValidateDescriptors(def.Fields); err != nil {
			errs = append(errs, fmt.Errorf("form %s: %w", def.Type, err))
			continue
		}
		c.defs[def.Type] = def
		c.order = append(c.order, def.Type)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the definition registered for formType.
func (c *Catalog) Get(formType string) (models.FormDefinition, bool) {
	def, ok := c.defs[formType]
	return def, ok
}

// List returns all definitions in registration order.
func (c *Catalog) List() []models.FormDefinition {
	out := make([]models.FormDefinition, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.defs[t])
	}
	return out
}

// DefaultCatalog returns the portal's intake forms.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		contactForm(),
		consultingForm(),
		aumForm(),
		gigForm(),
		startupForm(),
	)
	if err != nil {
		panic(fmt.Sprintf("default form catalog: %v", err))
	}
	return c
}

func text(id, label string, required bool, width models.FieldWidth) models.FieldDescriptor {
	return models.FieldDescriptor{ID: id, Label: label, Kind: models.FieldText, Required: required, Width: width}
}

func textarea(id, label, placeholder string, required bool) models.FieldDescriptor {
	return models.FieldDescriptor{ID: id, Label: label, Kind: models.FieldTextarea, Required: required, Placeholder: placeholder, Width: models.WidthFull}
}

func choice(id, label string, required bool, options ...string) models.FieldDescriptor {
	return models.FieldDescriptor{ID: id, Label: label, Kind: models.FieldSelect, Required: required, Width: models.WidthHalf, Options: options}
}

func checkbox(id, label string, required bool) models.FieldDescriptor {
	return models.FieldDescriptor{ID: id, Label: label, Kind: models.FieldCheckbox, Required: required, Width: models.WidthFull}
}

func heading(id, label string) models.FieldDescriptor {
	return models.FieldDescriptor{ID: id, Label: label, Kind: models.FieldHeading}
}

func section(id, label string) models.FieldDescriptor {
	return models.FieldDescriptor{ID: id, Label: label, Kind: models.FieldSection}
}

func contactForm() models.FormDefinition {
	return models.FormDefinition{
		Type:        TypeContact,
		Title:       "Contact us",
		Description: "General questions for the team.",
		Fields: []models.FieldDescriptor{
			text("name", "Name", true, models.WidthHalf),
			text("email", "Email", true, models.WidthHalf),
			text("phone", "Phone", false, models.WidthHalf),
			text("subject", "Subject", false, models.WidthHalf),
			textarea("message", "Message", "How can we help?", true),
		},
	}
}

func consultingForm() models.FormDefinition {
	return models.FormDefinition{
		Type:        TypeConsulting,
		Title:       "Consulting request",
		Description: "Advisory on fundraising, go-to-market and operations.",
		Fields: []models.FieldDescriptor{
			text("fullName", "Full name", true, models.WidthHalf),
			text("email", "Email", true, models.WidthHalf),
			text("phone", "Phone", false, models.WidthHalf),
			text("companyName", "Company", false, models.WidthHalf),
			textarea("needs", "What do you need help with?", "", true),
			choice("budget", "Budget", false, "Under $10k", "$10k-$50k", "$50k-$150k", "Over $150k"),
			choice("timeline", "Timeline", false, "ASAP", "1-3 months", "3-6 months", "Flexible"),
		},
	}
}

func aumForm() models.FormDefinition {
	return models.FormDefinition{
		Type:        TypeAUM,
		Title:       "Asset management application",
		Description: "Apply for a managed allocation.",
		ClientsOnly: true,
		Fields: []models.FieldDescriptor{
			heading("contactHeading", "Contact details"),
			text("contactPerson", "Contact person", true, models.WidthHalf),
			text("email", "Email", true, models.WidthHalf),
			text("phone", "Phone", true, models.WidthHalf),
			text("companyName", "Entity name", false, models.WidthHalf),
			section("investmentSection", "Investment profile"),
			choice("aumRange", "Assets to allocate", true, "$250k-$1M", "$1M-$5M", "$5M-$25M", "Over $25M"),
			choice("riskProfile", "Risk profile", true, "Conservative", "Balanced", "Growth", "Aggressive"),
			textarea("description", "Investment objectives", "Horizon, liquidity needs, restrictions", false),
			checkbox("accreditedInvestor", "I confirm I am an accredited investor", true),
		},
	}
}

func gigForm() models.FormDefinition {
	return models.FormDefinition{
		Type:        TypeGIG,
		Title:       "Global Investment Gateway application",
		Description: "Cross-border investment into our partner markets.",
		ClientsOnly: true,
		Fields: []models.FieldDescriptor{
			text("fullName", "Full name", true, models.WidthHalf),
			text("email", "Email", true, models.WidthHalf),
			text("phone", "Phone", false, models.WidthHalf),
			text("company", "Company", false, models.WidthHalf),
			choice("targetMarket", "Target market", true, "North America", "Europe", "Middle East", "Asia-Pacific"),
			choice("investmentSize", "Investment size", true, "Under $1M", "$1M-$10M", "Over $10M"),
			textarea("projectDescription", "Project description", "", true),
			checkbox("agreeTerms", "I agree to the programme terms", true),
		},
	}
}

func startupForm() models.FormDefinition {
	return models.FormDefinition{
		Type:        TypeStartup,
		Title:       "Pitch your startup",
		Description: "Founders raising pre-seed to Series B.",
		Fields: []models.FieldDescriptor{
			heading("founderHeading", "Founder"),
			text("founderName", "Founder name", true, models.WidthHalf),
			text("email", "Email", true, models.WidthHalf),
			text("phone", "Phone", false, models.WidthHalf),
			section("companySection", "Company"),
			text("companyName", "Company name", true, models.WidthHalf),
			text("website", "Website", false, models.WidthHalf),
			choice("stage", "Stage", true, "Pre-seed", "Seed", "Series A", "Series B"),
			choice("sector", "Sector", true, "Fintech", "SaaS", "AI/ML", "Health", "Climate", "Other"),
			text("fundingAsk", "Amount raising", false, models.WidthHalf),
			textarea("companyOverview", "Company overview", "Problem, product, traction", true),
		},
	}
}
