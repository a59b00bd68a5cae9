// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID int64) (models.ClientProfile, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(r.db.builder, userID)
	if err != nil {
		return models.ClientProfile{}, false, err
	}

	var (
		profile     models.ClientProfile
		companyName sql.NullString
		phone       sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&profile.ProfileID,
		&profile.UserID,
		&profile.FullName,
		&companyName,
		&phone,
		&profile.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClientProfile{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindByUserID").Int64("user_id", userID).Msg("error scanning profile")
		return models.ClientProfile{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	profile.CompanyName = companyName.String
	profile.Phone = phone.String

	return profile, true, nil
}

// CreateProfile inserts the client profile of profile.UserID. A second
// profile for the same user yields [ErrProfileAlreadyExists]; an unknown user
// yields [ErrNoUserWasFound].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.ClientProfile) (models.ClientProfile, error) {
	log := logger.FromContext(ctx)

	profile.CreatedAt = time.Now().UTC()

	query, args, err := buildInsertProfileQuery(r.db.builder, profile)
	if err != nil {
		return models.ClientProfile{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&profile.ProfileID); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Int64("user_id", profile.UserID).Msg("error inserting profile")

		switch {
		case isUniqueViolation(err):
			return models.ClientProfile{}, ErrProfileAlreadyExists
		case isForeignKeyViolation(err):
			return models.ClientProfile{}, ErrNoUserWasFound
		default:
			return models.ClientProfile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return profile, nil
}
