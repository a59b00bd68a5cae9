// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/internal/inquiry"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/models"
)

type inquiryService struct {
	inquiryRepository store.InquiryRepository
	catalog           *forms.Catalog

	logger *logger.Logger
}

func NewInquiryService(inquiryRepository store.InquiryRepository, catalog *forms.Catalog, logger *logger.Logger) InquiryService {
	return &inquiryService{
		inquiryRepository: inquiryRepository,
		catalog:           catalog,
		logger:            logger,
	}
}

// CreateInquiry stores an already normalized record.
func (s *inquiryService) CreateInquiry(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error) {
	log := logger.FromContext(ctx)

	stored, err := s.inquiryRepository.Create(ctx, record)
	if err != nil {
		log.Err(err).Str("type", record.Type).Msg("inquiry insert failed")
		return models.InquiryRecord{}, fmt.Errorf("inquiry insert failed: %w", err)
	}

	log.Info().Str("id", stored.ID).Str("type", stored.Type).Msg("inquiry stored")
	return stored, nil
}

// SubmitForm checks raw form data against the catalog form of formType,
// normalizes it and stores the result.
func (s *inquiryService) SubmitForm(ctx context.Context, formType string, submission models.FormSubmission) (models.InquiryRecord, error) {
	def, ok := s.catalog.Get(formType)
	if !ok {
		return models.InquiryRecord{}, ErrFormNotFound
	}

	if missing := forms.MissingRequired(def.Fields, submission.FormData); len(missing) > 0 {
		logger.FromContext(ctx).Warn().Str("type", formType).Strs("missing", missing).Msg("form submission incomplete")
		return models.InquiryRecord{}, fmt.Errorf("%w: %v", ErrValidationMissingRequired, missing)
	}

	return s.CreateInquiry(ctx, inquiry.Normalize(def.Type, submission.FormData, submission.Metadata))
}
