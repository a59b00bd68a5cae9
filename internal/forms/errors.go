// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import "errors"

var (
	ErrEmptyFieldID     = errors.New("field id is empty")
	ErrDuplicateFieldID = errors.New("duplicate field id")
	ErrUnknownFieldKind = errors.New("unknown field kind")
	ErrMissingOptions   = errors.New("select field has no options")
	ErrInvalidWidth     = errors.New("invalid field width")

	ErrUnknownField    = errors.New("unknown field")
	ErrStructuralField = errors.New("structural field holds no value")
	ErrValueType       = errors.New("value type does not match field kind")
	ErrInvalidOption   = errors.New("value is not one of the field options")
	ErrRequiredField   = errors.New("required field is empty")
	ErrSubmitInFlight  = errors.New("submission already in progress")
	ErrNilSubmitFunc   = errors.New("submit callback is nil")

	ErrDuplicateFormType = errors.New("duplicate form type")
	ErrEmptyFormType     = errors.New("form type is empty")
)
