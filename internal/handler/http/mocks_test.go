// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/service"
	"github.com/MKhiriev/venture-portal/models"
)

// ─────────────────────────────────────────────
// Service fakes. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn       func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	loginFn              func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	createTokenFn        func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn         func(ctx context.Context, tokenString string) (models.Token, error)
	createConfirmationFn func(ctx context.Context, user models.User) (models.Token, error)
	confirmEmailFn       func(ctx context.Context, token string) error
	getUserFn            func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CreateConfirmationToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createConfirmationFn == nil {
		return models.Token{SignedString: "confirm"}, nil
	}
	return m.createConfirmationFn(ctx, user)
}

func (m *mockAuthService) ConfirmEmail(ctx context.Context, token string) error {
	return m.confirmEmailFn(ctx, token)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockContentService struct {
	getContentFn  func(ctx context.Context, key string) (models.ContentDocument, error)
	getContentsFn func(ctx context.Context, keys []string) ([]models.ContentDocument, error)
}

func (m *mockContentService) GetContent(ctx context.Context, key string) (models.ContentDocument, error) {
	return m.getContentFn(ctx, key)
}

func (m *mockContentService) GetContents(ctx context.Context, keys []string) ([]models.ContentDocument, error) {
	return m.getContentsFn(ctx, keys)
}

type mockInquiryService struct {
	createInquiryFn func(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error)
	submitFormFn    func(ctx context.Context, formType string, submission models.FormSubmission) (models.InquiryRecord, error)
}

func (m *mockInquiryService) CreateInquiry(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error) {
	return m.createInquiryFn(ctx, record)
}

func (m *mockInquiryService) SubmitForm(ctx context.Context, formType string, submission models.FormSubmission) (models.InquiryRecord, error) {
	return m.submitFormFn(ctx, formType, submission)
}

type mockProfileService struct {
	getProfileFn    func(ctx context.Context, userID int64) (models.ClientProfile, error)
	createProfileFn func(ctx context.Context, userID int64, fields models.ProfileFields) (models.ClientProfile, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.ClientProfile, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockProfileService) CreateProfile(ctx context.Context, userID int64, fields models.ProfileFields) (models.ClientProfile, error) {
	return m.createProfileFn(ctx, userID, fields)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testFingerprintKey = "fingerprint-key"

func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, config.Server{}, testFingerprintKey, logger.Nop())
}

// acceptingAuth authorises every token as user 1.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 1}, nil
		},
	}
}
