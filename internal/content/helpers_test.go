// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"context"

	"github.com/MKhiriev/venture-portal/models"
)

type stubReader struct {
	getFn     func(ctx context.Context, key string) (models.ContentPayload, bool, error)
	getManyFn func(ctx context.Context, keys []string) (map[string]models.ContentPayload, error)
}

func (s *stubReader) Get(ctx context.Context, key string) (models.ContentPayload, bool, error) {
	return s.getFn(ctx, key)
}

func (s *stubReader) GetMany(ctx context.Context, keys []string) (map[string]models.ContentPayload, error) {
	return s.getManyFn(ctx, keys)
}

func staticReader(docs map[string]models.ContentPayload) *stubReader {
	return &stubReader{
		getFn: func(_ context.Context, key string) (models.ContentPayload, bool, error) {
			p, ok := docs[key]
			return p, ok, nil
		},
		getManyFn: func(_ context.Context, keys []string) (map[string]models.ContentPayload, error) {
			out := make(map[string]models.ContentPayload)
			for _, k := range keys {
				if p, ok := docs[k]; ok {
					out[k] = p
				}
			}
			return out, nil
		},
	}
}
