// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/venture-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContentRepository reads and writes content slots. A missing key is
// reported as found=false with a nil error.
type ContentRepository interface {
	Get(ctx context.Context, key string) (models.ContentDocument, bool, error)
	GetMany(ctx context.Context, keys []string) ([]models.ContentDocument, error)
	Put(ctx context.Context, doc models.ContentDocument) error
}

// InquiryRepository persists normalized inquiry records.
type InquiryRepository interface {
	Create(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error)
}

// UserRepository manages portal accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ConfirmEmail(ctx context.Context, userID int64, at time.Time) error
}

// ProfileRepository manages client profiles. A user without a profile is
// reported as found=false with a nil error.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (models.ClientProfile, bool, error)
	CreateProfile(ctx context.Context, profile models.ClientProfile) (models.ClientProfile, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
