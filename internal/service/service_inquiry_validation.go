// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/inquiry"
	"github.com/MKhiriev/venture-portal/internal/validators"
	"github.com/MKhiriev/venture-portal/models"
)

// InquiryValidationService validates records before they reach the wrapped
// InquiryService.
type InquiryValidationService struct {
	inner     InquiryService
	validator validators.Validator
}

func NewInquiryValidationService() InquiryServiceWrapper {
	return &InquiryValidationService{
		validator: validators.NewInquiryValidator(),
	}
}

func (v *InquiryValidationService) Wrap(inner InquiryService) InquiryService {
	v.inner = inner
	return v
}

func (v *InquiryValidationService) CreateInquiry(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.InquiryRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateInquiry(ctx, record)
}

// SubmitForm validates the record the submission normalizes to before
// handing the raw submission to the wrapped service.
func (v *InquiryValidationService) SubmitForm(ctx context.Context, formType string, submission models.FormSubmission) (models.InquiryRecord, error) {
	if submission.FormData == nil {
		return models.InquiryRecord{}, ErrInvalidDataProvided
	}

	preview := inquiry.Normalize(formType, submission.FormData, submission.Metadata)
	if err := v.validator.Validate(ctx, preview); err != nil {
		return models.InquiryRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SubmitForm(ctx, formType, submission)
}
