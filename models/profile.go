// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ClientProfile marks a user as a customer-facing client. Administrative
// accounts have no profile.
type ClientProfile struct {
	ProfileID   int64     `json:"profile_id,omitempty"`
	UserID      int64     `json:"-"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ProfileFields are the identifying fields captured at sign-up and used to
// create the client profile.
type ProfileFields struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// ToProfile converts sign-up fields into a profile for userID.
func (f ProfileFields) ToProfile(userID int64) ClientProfile {
	return ClientProfile{
		UserID:      userID,
		FullName:    f.FullName,
		CompanyName: f.CompanyName,
		Phone:       f.Phone,
	}
}
