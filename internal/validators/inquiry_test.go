// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInquiry() models.InquiryRecord {
	return models.InquiryRecord{
		Type:    "consulting",
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Consulting Inquiry",
		Message: "help",
	}
}

func TestNewInquiryValidator(t *testing.T) {
	require.NotNil(t, NewInquiryValidator())
}

func TestInquiryValidator_Validate(t *testing.T) {
	v := NewInquiryValidator()

	tests := []struct {
		name    string
		mutate  func(r *models.InquiryRecord)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.InquiryRecord) {}},
		{name: "unknown email placeholder", mutate: func(r *models.InquiryRecord) { r.Email = "unknown" }},
		{name: "empty type", mutate: func(r *models.InquiryRecord) { r.Type = " " }, wantErr: ErrEmptyType},
		{name: "empty name", mutate: func(r *models.InquiryRecord) { r.Name = "" }, wantErr: ErrEmptyName},
		{name: "bad email", mutate: func(r *models.InquiryRecord) { r.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "display name email", mutate: func(r *models.InquiryRecord) { r.Email = "Ada <ada@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "empty subject", mutate: func(r *models.InquiryRecord) { r.Subject = "" }, wantErr: ErrEmptySubject},
		{name: "empty message", mutate: func(r *models.InquiryRecord) { r.Message = "\n" }, wantErr: ErrEmptyMessage},
		{name: "long phone", mutate: func(r *models.InquiryRecord) { r.Phone = strings.Repeat("1", 201) }, wantErr: ErrFieldTooLong},
		{name: "long message", mutate: func(r *models.InquiryRecord) { r.Message = strings.Repeat("m", 10001) }, wantErr: ErrFieldTooLong},
		{name: "scoped to name ignores email", mutate: func(r *models.InquiryRecord) { r.Email = "bad" }, fields: []string{FieldName}},
		{name: "unknown field", mutate: func(*models.InquiryRecord) {}, fields: []string{"budget"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validInquiry()
			tt.mutate(&r)

			err := v.Validate(context.Background(), r, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			ptrErr := v.Validate(context.Background(), &r, tt.fields...)
			assert.Equal(t, err, ptrErr)
		})
	}
}

func TestInquiryValidator_UnsupportedType(t *testing.T) {
	v := NewInquiryValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "x"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.InquiryRecord)(nil)), ErrUnsupportedType)
}
