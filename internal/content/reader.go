// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"context"

	"github.com/MKhiriev/venture-portal/models"
)

// Reader is the read side of the content store.
//
// Get reports found=false with a nil error when the key has no document.
// GetMany omits absent keys from the result.
type Reader interface {
	Get(ctx context.Context, key string) (models.ContentPayload, bool, error)
	GetMany(ctx context.Context, keys []string) (map[string]models.ContentPayload, error)
}
