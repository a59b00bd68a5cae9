// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/venture-portal/models"
)

// Field names accepted by ContentValidator.
const (
	FieldKey  = "key"
	FieldKeys = "keys"
)

const (
	maxKeyLength   = 64
	maxBatchLength = 50
)

// ContentValidator checks slot keys on content reads and writes.
type ContentValidator struct{}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

// Validate accepts a key string, models.ContentDocument and
// models.ContentBatchRequest.
func (v *ContentValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateKey(value)
	case models.ContentDocument:
		return validateKey(value.Key)
	case *models.ContentDocument:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateKey(value.Key)
	case models.ContentBatchRequest:
		return validateKeys(value.Keys)
	case *models.ContentBatchRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return validateKeys(value.Keys)
	default:
		return ErrUnsupportedType
	}
}

func validateKeys(keys []string) error {
	if len(keys) == 0 {
		return ErrEmptyKeys
	}
	if len(keys) > maxBatchLength {
		return fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(keys), maxBatchLength)
	}
	for i, key := range keys {
		if err := validateKey(key); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}
	return nil
}

// validateKey allows lowercase letters, digits, '-' and '_'.
func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("%w: key longer than %d characters", ErrFieldTooLong, maxKeyLength)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}
