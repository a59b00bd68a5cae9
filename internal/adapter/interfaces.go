// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the portal HTTP API.
//
// [PortalAdapter] decouples the terminal client from the transport. It
// satisfies the content read interface, the inquiry write interface and the
// session backend, so the same value is handed to the content resolver, the
// submitter and the session manager.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/venture-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// PortalAdapter defines communication with the portal server.
type PortalAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, req models.SignUpRequest) (string, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, req models.SignUpRequest) (string, error)

	// ConfirmEmail redeems an email confirmation token.
	ConfirmEmail(ctx context.Context, confirmationToken string) error

	// Session returns the signed-in user and, if present, their profile.
	Session(ctx context.Context) (models.SessionResponse, error)

	// GetProfile returns the caller's client profile. found is false when
	// the user has none.
	GetProfile(ctx context.Context) (profile models.ClientProfile, found bool, err error)

	// CreateProfile inserts the caller's client profile.
	CreateProfile(ctx context.Context, fields models.ProfileFields) (models.ClientProfile, error)

	// Get reads one content slot. A missing slot is found=false, err=nil.
	Get(ctx context.Context, key string) (models.ContentPayload, bool, error)

	// GetMany reads several content slots in one request. Missing slots are
	// absent from the result.
	GetMany(ctx context.Context, keys []string) (map[string]models.ContentPayload, error)

	// CreateInquiry stores a normalized inquiry.
	CreateInquiry(ctx context.Context, record models.InquiryRecord) error

	// ListForms returns the form catalog.
	ListForms(ctx context.Context) ([]models.FormDefinition, error)

	// GetForm returns one catalog form.
	GetForm(ctx context.Context, formType string) (models.FormDefinition, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
