// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/venture-portal/internal/content"
	"github.com/MKhiriev/venture-portal/internal/inquiry"
	"github.com/MKhiriev/venture-portal/internal/session"
	"github.com/MKhiriev/venture-portal/models"
)

// Portal is the part of the portal API the screens read from and write to.
// [adapter.PortalAdapter] satisfies it.
type Portal interface {
	content.Reader
	inquiry.Writer

	ListForms(ctx context.Context) ([]models.FormDefinition, error)
	GetForm(ctx context.Context, formType string) (models.FormDefinition, error)
}

// Session is the session owner shared by every screen.
// [session.Manager] satisfies it.
type Session interface {
	CurrentSession() models.SessionState
	OnSessionChange(cb session.Listener) (unsubscribe func())
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string, fields models.ProfileFields) error
	ConfirmEmail(ctx context.Context, confirmationToken string) error
	SignOut(ctx context.Context) error
}
