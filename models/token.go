// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose distinguishes session bearer tokens from single-use email
// confirmation tokens signed with the same key.
type TokenPurpose string

const (
	PurposeSession      TokenPurpose = "session"
	PurposeConfirmEmail TokenPurpose = "confirm_email"
)

// Token wraps a signed JWT together with the values extracted from it.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in headers.
	SignedString string `json:"-"`

	// UserID is parsed from the "sub" claim.
	UserID int64 `json:"-"`

	// Purpose is parsed from the "purpose" claim.
	Purpose TokenPurpose `json:"-"`
}

// String returns the compact JWS serialization.
func (t Token) String() string {
	return t.SignedString
}

// Claims is the JWT claim set issued by the portal.
type Claims struct {
	jwt.RegisteredClaims
	Purpose TokenPurpose `json:"purpose"`
}

// UserID parses the subject claim as a user ID.
func (c Claims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("empty subject claim")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting subject to user ID: %w", err)
	}

	return userID, nil
}
