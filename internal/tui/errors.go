// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/adapter"
	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/internal/session"
)

var (
	ErrUserQuit          = errors.New("user quit")
	ErrMissingDependency = errors.New("portal and session are required")
)

// humanizeError turns transport and API errors into a message for the status
// line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Wrong email or password"
	case errors.Is(err, adapter.ErrConflict):
		return "An account with this email already exists"
	case errors.Is(err, session.ErrEmptyCredentials):
		return "Email and password are required"
	case errors.Is(err, session.ErrProfileNotSaved):
		return "Account created, but the client profile could not be saved"
	case errors.Is(err, forms.ErrRequiredField):
		return "Please fill in every required field"
	case errors.Is(err, forms.ErrSubmitInFlight):
		return "Submission already in progress"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return err.Error()
}
