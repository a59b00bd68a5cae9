// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"encoding/json"

	"github.com/MKhiriev/venture-portal/models"
)

// Decode coerces payload onto a copy of def. Fields that are absent from the
// payload, or hold a value of the wrong type, keep the value from def.
// def itself is never modified.
func Decode[T any](payload models.ContentPayload, def T) T {
	out := clone(def)
	if len(payload) == 0 {
		return out
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out
	}

	// a type mismatch skips the offending field and keeps decoding the rest
	_ = json.Unmarshal(raw, &out)

	return out
}

// Encode turns a typed slot back into a raw payload, e.g. for seeding.
func Encode[T any](v T) (models.ContentPayload, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	payload := models.ContentPayload{}
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// clone deep-copies v through JSON so slices in the default are not shared
// with the decoded value.
func clone[T any](v T) T {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type HomeContent struct {
	Hero     models.HeroSection `json:"hero"`
	Sections []models.Section  `json:"sections"`
}

type FooterContent struct {
	Tagline   string `json:"tagline"`
	Copyright string `json:"copyright"`
	Links     []Link `json:"links"`
}

type GlobalSettings struct {
	SiteName     string `json:"site_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	Announcement string `json:"announcement"`
}

// PageContent is the shape shared by the about, services, board, news and
// contact slots.
type PageContent struct {
	Title    string           `json:"title"`
	Intro    string           `json:"intro"`
	Sections []models.Section `json:"sections"`
}
