// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/internal/validators"
	"github.com/MKhiriev/venture-portal/models"
)

type contentService struct {
	contentRepository store.ContentRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewContentService(contentRepository store.ContentRepository, logger *logger.Logger) ContentService {
	return &contentService{
		contentRepository: contentRepository,
		validator:         validators.NewContentValidator(),
		logger:            logger,
	}
}

// GetContent returns the document stored under key, or ErrContentNotFound.
func (s *contentService) GetContent(ctx context.Context, key string) (models.ContentDocument, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, key); err != nil {
		return models.ContentDocument{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	doc, found, err := s.contentRepository.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("content lookup failed")
		return models.ContentDocument{}, fmt.Errorf("content lookup failed: %w", err)
	}
	if !found {
		return models.ContentDocument{}, ErrContentNotFound
	}

	return doc, nil
}

// GetContents returns the documents that exist for keys. Missing keys are
// simply absent.
func (s *contentService) GetContents(ctx context.Context, keys []string) ([]models.ContentDocument, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.ContentBatchRequest{Keys: keys}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	docs, err := s.contentRepository.GetMany(ctx, keys)
	if err != nil {
		log.Err(err).Strs("keys", keys).Msg("batch content lookup failed")
		return nil, fmt.Errorf("batch content lookup failed: %w", err)
	}

	return docs, nil
}
