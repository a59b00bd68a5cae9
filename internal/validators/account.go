// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/venture-portal/models"
)

// Field names accepted by AccountValidator.
const (
	FieldPassword = "password"
	FieldFullName = "full_name"
)

const minPasswordLength = 8

// AccountValidator checks sign-up credentials and client profile fields.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate accepts models.SignUpRequest and models.ProfileFields, by value or
// pointer. Callers validate sign-in requests with FieldEmail only.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(ctx, value, fields...)
	case *models.SignUpRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSignUp(ctx, *value, fields...)
	case models.ProfileFields:
		return v.validateProfile(ctx, value, fields...)
	case *models.ProfileFields:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProfile(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateSignUp(_ context.Context, req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				return ErrShortPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateProfile(_ context.Context, profile models.ProfileFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldCompany, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if strings.TrimSpace(profile.FullName) == "" {
				return ErrEmptyFullName
			}
			if err := maxLength(FieldFullName, profile.FullName, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldCompany:
			if err := maxLength(FieldCompany, profile.CompanyName, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldPhone:
			if err := maxLength(FieldPhone, profile.Phone, MaxShortFieldLength); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
