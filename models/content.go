// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Well-known content slot keys.
const (
	SlotHome           = "home"
	SlotFooter         = "footer"
	SlotGlobalSettings = "global_settings"
	SlotAbout          = "about"
	SlotServices       = "services"
	SlotBoard          = "board"
	SlotNews           = "news"
	SlotContact        = "contact"
)

// ContentPayload is the JSON-compatible body of a content slot. Its schema is
// owned by the page that reads it.
type ContentPayload = map[string]any

// ContentDocument is one named content slot as stored in the content store.
// Documents are written out of band and are read-only for the portal.
type ContentDocument struct {
	// Key is the unique slot name (e.g. "home", "footer").
	Key string `json:"key"`

	// Payload is the slot body. It replaces any previous payload wholesale.
	Payload ContentPayload `json:"payload"`

	// UpdatedAt is set by the store on every upsert.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ContentBatchRequest is the body of POST /api/content/batch.
type ContentBatchRequest struct {
	Keys []string `json:"keys"`
}

// ContentBatchResponse lists the documents found for a batch request.
// Keys that have no document are simply absent.
type ContentBatchResponse struct {
	Documents []ContentDocument `json:"documents"`
}
