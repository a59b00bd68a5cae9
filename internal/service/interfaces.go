// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the portal server's business logic. Handlers talk to
// the interfaces below; repositories stay behind them.
package service

import (
	"context"

	"github.com/MKhiriev/venture-portal/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.SignUpRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CreateConfirmationToken(ctx context.Context, user models.User) (models.Token, error)
	ConfirmEmail(ctx context.Context, confirmationToken string) error
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type ContentService interface {
	GetContent(ctx context.Context, key string) (models.ContentDocument, error)
	GetContents(ctx context.Context, keys []string) ([]models.ContentDocument, error)
}

type InquiryService interface {
	CreateInquiry(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error)
	SubmitForm(ctx context.Context, formType string, submission models.FormSubmission) (models.InquiryRecord, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.ClientProfile, error)
	CreateProfile(ctx context.Context, userID int64, fields models.ProfileFields) (models.ClientProfile, error)
}

type FormService interface {
	ListForms(ctx context.Context) []models.FormDefinition
	GetForm(ctx context.Context, formType string) (models.FormDefinition, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// InquiryServiceWrapper defines middleware composition for InquiryService.
// Implementations wrap an existing InquiryService to add behavior such as
// validation.
type InquiryServiceWrapper interface {
	Wrap(InquiryService) InquiryService
}
