// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InquiryRecord is the canonical lead record persisted from any site form.
type InquiryRecord struct {
	// ID is assigned by the server on insert.
	ID string `json:"id,omitempty"`

	// Type identifies the form that produced the inquiry (e.g. "consulting").
	Type string `json:"type"`

	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`

	// Metadata holds every submitted field that was not promoted to a named
	// attribute, plus caller-supplied context.
	Metadata map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// FormSubmission is the body of POST /api/forms/{type}/submissions: a raw
// form-values object plus optional page context.
type FormSubmission struct {
	FormData map[string]any `json:"form_data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
