// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/venture-portal/models"
)

// Field names accepted by InquiryValidator.
const (
	FieldType    = "type"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company_name"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Length limits in runes. Front ends cap their inputs with the same values.
const (
	MaxShortFieldLength = 200
	MaxMessageLength    = 10000

	// unknownEmail is what the normalizer records when no email was given.
	unknownEmail = "unknown"
)

// InquiryValidator checks normalized inquiry records before they are stored.
type InquiryValidator struct{}

func NewInquiryValidator() Validator {
	return &InquiryValidator{}
}

// Validate accepts models.InquiryRecord or a pointer to it. With no fields
// every attribute is checked.
func (v *InquiryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InquiryRecord:
		return v.validateInquiry(ctx, value, fields...)
	case *models.InquiryRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateInquiry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InquiryValidator) validateInquiry(_ context.Context, record models.InquiryRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldName, FieldEmail, FieldPhone, FieldCompany, FieldSubject, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if strings.TrimSpace(record.Type) == "" {
				return ErrEmptyType
			}
			if err := maxLength(FieldType, record.Type, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldName:
			if strings.TrimSpace(record.Name) == "" {
				return ErrEmptyName
			}
			if err := maxLength(FieldName, record.Name, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldEmail:
			if record.Email == unknownEmail {
				continue
			}
			if err := validateEmail(record.Email); err != nil {
				return err
			}
		case FieldPhone:
			if err := maxLength(FieldPhone, record.Phone, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldCompany:
			if err := maxLength(FieldCompany, record.CompanyName, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldSubject:
			if strings.TrimSpace(record.Subject) == "" {
				return ErrEmptySubject
			}
			if err := maxLength(FieldSubject, record.Subject, MaxShortFieldLength); err != nil {
				return err
			}
		case FieldMessage:
			if strings.TrimSpace(record.Message) == "" {
				return ErrEmptyMessage
			}
			if err := maxLength(FieldMessage, record.Message, MaxMessageLength); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func maxLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %s longer than %d characters", ErrFieldTooLong, field, limit)
	}
	return nil
}
