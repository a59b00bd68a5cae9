// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a portal account. Having a User does not make someone a client:
// that requires a [ClientProfile] as well.
type User struct {
	// UserID is the internal identifier. It is carried in the token subject
	// and never accepted from request bodies.
	UserID int64 `json:"-"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// Password is the plaintext password received on sign-up or sign-in.
	// It is never persisted and never serialized back to callers.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// EmailConfirmedAt is nil until the address has been confirmed.
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// IsEmailConfirmed reports whether the email address has been verified.
func (u User) IsEmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// Sanitized returns a copy of u that is safe to send to clients.
func (u User) Sanitized() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "users"
}

// SignUpRequest is the body of POST /api/user/register.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ConfirmEmailRequest is the body of POST /api/user/confirm.
type ConfirmEmailRequest struct {
	Token string `json:"token"`
}
