// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/internal/validators"
	"github.com/MKhiriev/venture-portal/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validators.NewAccountValidator(),
		logger:            logger,
	}
}

// GetProfile returns the user's client profile or ErrProfileNotFound.
func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.ClientProfile, error) {
	profile, found, err := s.profileRepository.FindByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.ClientProfile{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	if !found {
		return models.ClientProfile{}, ErrProfileNotFound
	}

	return profile, nil
}

// CreateProfile stores the client profile of userID. A second profile for
// the same user fails with store.ErrProfileAlreadyExists.
func (s *profileService) CreateProfile(ctx context.Context, userID int64, fields models.ProfileFields) (models.ClientProfile, error) {
	log := logger.FromContext(ctx)

	fields.FullName = strings.TrimSpace(fields.FullName)
	fields.CompanyName = strings.TrimSpace(fields.CompanyName)
	fields.Phone = strings.TrimSpace(fields.Phone)

	if userID <= 0 {
		return models.ClientProfile{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, fields); err != nil {
		return models.ClientProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	profile, err := s.profileRepository.CreateProfile(ctx, fields.ToProfile(userID))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile creation failed")
		return models.ClientProfile{}, fmt.Errorf("profile creation failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Int64("profile_id", profile.ProfileID).Msg("client profile created")
	return profile, nil
}
