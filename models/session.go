// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the view of the current session consumed by the access gate.
type SessionState struct {
	// User is the authenticated user or nil for anonymous visitors.
	User *User

	// Profile is the user's client profile, nil when none exists.
	Profile *ClientProfile

	// Loading is true until the session and profile lookups have resolved.
	Loading bool
}

// IsClient is true only when both a user and a client profile are present.
func (s SessionState) IsClient() bool {
	return s.User != nil && s.Profile != nil
}

// SessionResponse is the body of GET /api/user/session.
type SessionResponse struct {
	User    User           `json:"user"`
	Profile *ClientProfile `json:"profile"`
}
