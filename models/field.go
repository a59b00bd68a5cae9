// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldKind is the input kind of a form field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
	FieldCheckbox FieldKind = "checkbox"

	// FieldHeading and FieldSection are structural: they render markup only
	// and never hold a value.
	FieldHeading FieldKind = "heading"
	FieldSection FieldKind = "section"
)

// IsStructural reports whether the kind is layout-only.
func (k FieldKind) IsStructural() bool {
	return k == FieldHeading || k == FieldSection
}

// IsValid reports whether k is one of the known kinds.
func (k FieldKind) IsValid() bool {
	switch k {
	case FieldText, FieldTextarea, FieldSelect, FieldCheckbox, FieldHeading, FieldSection:
		return true
	default:
		return false
	}
}

// FieldWidth is a layout hint for a field.
type FieldWidth string

const (
	WidthFull FieldWidth = "full"
	WidthHalf FieldWidth = "half"
)

// FieldDescriptor declares one input of a dynamic form.
type FieldDescriptor struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Kind        FieldKind  `json:"type"`
	Required    bool       `json:"required,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Width       FieldWidth `json:"width,omitempty"`

	// Options is the ordered option list of a select field.
	Options []string `json:"options,omitempty"`
}

// FormValues maps a field ID to its current value: string for text, textarea
// and select fields, bool for checkboxes.
type FormValues map[string]any

// FormDefinition is a complete intake form as served by /api/forms/{type}.
type FormDefinition struct {
	// Type is the inquiry type tag recorded on every submission of this form.
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	ClientsOnly bool              `json:"clients_only,omitempty"`
	Fields      []FieldDescriptor `json:"fields"`
}
