// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"context"
	"sort"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

// ResolveBatch resolves several slots with a single GetMany call.
//
// The result holds one entry per key of defaults. Each entry is either the
// stored payload, when present and non-empty, or that key's default. On a
// read failure every entry is its default and the error is returned.
func ResolveBatch(ctx context.Context, reader Reader, defaults map[string]models.ContentPayload) (map[string]models.ContentPayload, error) {
	resolved := make(map[string]models.ContentPayload, len(defaults))
	keys := make([]string, 0, len(defaults))
	for key, def := range defaults {
		if def == nil {
			def = models.ContentPayload{}
		}
		resolved[key] = def
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return resolved, nil
	}
	if reader == nil {
		return resolved, ErrNilReader
	}
	sort.Strings(keys)

	payloads, err := reader.GetMany(ctx, keys)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Strs("keys", keys).
			Msg("batch content fetch failed, serving defaults")
		return resolved, err
	}

	for _, key := range keys {
		if payload := payloads[key]; len(payload) > 0 {
			resolved[key] = payload
		}
	}

	return resolved, nil
}
