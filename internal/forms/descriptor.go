// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/venture-portal/models"
)

// ValidateDescriptors checks a field list for unique non-empty ids, known
// kinds and widths, and non-empty select options. All problems are joined
// into the returned error.
func ValidateDescriptors(fields []models.FieldDescriptor) error {
	var errs []error
	seen := make(map[string]struct{}, len(fields))

	for i, f := range fields {
		if strings.TrimSpace(f.ID) == "" {
			errs = append(errs, fmt.Errorf("field #%d: %w", i, ErrEmptyFieldID))
			continue
		}
		if _, dup := seen[f.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateFieldID, f.ID))
		}
		seen[f.ID] = struct{}{}

		if !f.Kind.IsValid() {
			errs = append(errs, fmt.Errorf("%w: %s has kind %q", ErrUnknownFieldKind, f.ID, f.Kind))
		}
		if f.Width != "" && f.Width != models.WidthFull && f.Width != models.WidthHalf {
			errs = append(errs, fmt.Errorf("%w: %s has width %q", ErrInvalidWidth, f.ID, f.Width))
		}
		if f.Kind == models.FieldSelect && len(f.Options) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingOptions, f.ID))
		}
	}

	return errors.Join(errs...)
}

// InitialValues returns the empty value map for fields: "" for text, textarea
// and select, false for checkbox. Structural fields are left out.
func InitialValues(fields []models.FieldDescriptor) models.FormValues {
	values := make(models.FormValues, len(fields))
	for _, f := range fields {
		switch {
		case f.Kind.IsStructural():
		case f.Kind == models.FieldCheckbox:
			values[f.ID] = false
		default:
			values[f.ID] = ""
		}
	}
	return values
}

// MissingRequired returns the ids of required fields that are empty in values,
// in descriptor order. A checkbox counts as empty unless it is checked.
func MissingRequired(fields []models.FieldDescriptor, values map[string]any) []string {
	var missing []string
	for _, f := range fields {
		if !f.Required || f.Kind.IsStructural() {
			continue
		}
		if isEmpty(f.Kind, values[f.ID]) {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

func isEmpty(kind models.FieldKind, v any) bool {
	if kind == models.FieldCheckbox {
		checked, _ := v.(bool)
		return !checked
	}

	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}
