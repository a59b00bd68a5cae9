// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/venture-portal/models"
)

// EmptyPlaceholder is shown instead of a form that has no fields.
const EmptyPlaceholder = "This form is not available yet."

// SubmitFunc receives a snapshot of the form values. It reports whether the
// submission was accepted; false and a non-nil error both keep the values.
type SubmitFunc func(ctx context.Context, values models.FormValues) (bool, error)

// Form is the state of one rendered form. It is safe for concurrent use.
type Form struct {
	mu sync.Mutex

	title    string
	fields   []models.FieldDescriptor
	index    map[string]models.FieldDescriptor
	values   models.FormValues
	onSubmit SubmitFunc
	inFlight bool
}

// New validates fields and builds a form with initial values.
func New(title string, fields []models.FieldDescriptor, onSubmit SubmitFunc) (*Form, error) {
	if err := ValidateDescriptors(fields); err != nil {
		return nil, fmt.Errorf("invalid form %q: %w", title, err)
	}
	if onSubmit == nil {
		return nil, ErrNilSubmitFunc
	}

	index := make(map[string]models.FieldDescriptor, len(fields))
	for _, f := range fields {
		index[f.ID] = f
	}

	return &Form{
		title:    title,
		fields:   slices.Clone(fields),
		index:    index,
		values:   InitialValues(fields),
		onSubmit: onSubmit,
	}, nil
}

// FromDefinition builds a form from a catalog definition.
func FromDefinition(def models.FormDefinition, onSubmit SubmitFunc) (*Form, error) {
	return New(def.Title, def.Fields, onSubmit)
}

func (f *Form) Title() string {
	return f.title
}

// Fields returns the descriptors in render order.
func (f *Form) Fields() []models.FieldDescriptor {
	return slices.Clone(f.fields)
}

// Empty reports whether the form has no fields at all.
func (f *Form) Empty() bool {
	return len(f.fields) == 0
}

// Placeholder returns the message to render in place of an empty form.
func (f *Form) Placeholder() string {
	if f.Empty() {
		return EmptyPlaceholder
	}
	return ""
}

// Values returns a copy of the current values.
func (f *Form) Values() models.FormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// Value returns the current value of one field.
func (f *Form) Value(id string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[id]
	return v, ok
}

// Submitting reports whether a submit call is outstanding.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}

// Set updates a text, textarea or select field. A select accepts one of its
// options or "" for the neutral empty choice.
func (f *Form) Set(id, value string) error {
	field, err := f.lookup(id)
	if err != nil {
		return err
	}
	switch field.Kind {
	case models.FieldCheckbox:
		return fmt.Errorf("%w: %s is a checkbox", ErrValueType, id)
	case models.FieldSelect:
		if value != "" && !slices.Contains(field.Options, value) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidOption, id, value)
		}
	}

	f.mu.Lock()
	f.values[id] = value
	f.mu.Unlock()

	return nil
}

// SetChecked updates a checkbox field.
func (f *Form) SetChecked(id string, checked bool) error {
	field, err := f.lookup(id)
	if err != nil {
		return err
	}
	if field.Kind != models.FieldCheckbox {
		return fmt.Errorf("%w: %s is not a checkbox", ErrValueType, id)
	}

	f.mu.Lock()
	f.values[id] = checked
	f.mu.Unlock()

	return nil
}

// Validate reports every required field that is still empty.
func (f *Form) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

// Submit validates the form and calls the submit callback once with a
// snapshot of the values. The values are reset only when the callback
// returns true. A call made while another is outstanding returns
// [ErrSubmitInFlight] without invoking the callback.
func (f *Form) Submit(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return false, ErrSubmitInFlight
	}
	if err := f.validateLocked(); err != nil {
		f.mu.Unlock()
		return false, err
	}
	f.inFlight = true
	snapshot := maps.Clone(f.values)
	f.mu.Unlock()

	ok, err := f.onSubmit(ctx, snapshot)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if err != nil {
		return false, err
	}
	if ok {
		f.values = InitialValues(f.fields)
	}

	return ok, nil
}

// Reset restores the initial values.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = InitialValues(f.fields)
}

func (f *Form) lookup(id string) (models.FieldDescriptor, error) {
	field, ok := f.index[id]
	if !ok {
		return models.FieldDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	if field.Kind.IsStructural() {
		return models.FieldDescriptor{}, fmt.Errorf("%w: %s", ErrStructuralField, id)
	}
	return field, nil
}

func (f *Form) validateLocked() error {
	missing := MissingRequired(f.fields, f.values)
	if len(missing) == 0 {
		return nil
	}

	errs := make([]error, 0, len(missing))
	for _, id := range missing {
		errs = append(errs, fmt.Errorf("%w: %s", ErrRequiredField, id))
	}
	return errors.Join(errs...)
}
