// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/models"
)

// Seeder writes content files into the content store.
type Seeder struct {
	repo   store.ContentRepository
	logger *logger.Logger
}

func NewSeeder(repo store.ContentRepository, log *logger.Logger) *Seeder {
	return &Seeder{repo: repo, logger: log}
}

// SeedDir upserts every content file in dir and returns how many slots were
// written. Nothing is written when any file fails to decode.
func (s *Seeder) SeedDir(ctx context.Context, dir string) (int, error) {
	docs, err := LoadDir(dir)
	if err != nil {
		return 0, err
	}

	for i, doc := range docs {
		if err = s.put(ctx, doc); err != nil {
			return i, err
		}
	}

	return len(docs), nil
}

// SeedFile upserts a single content file.
func (s *Seeder) SeedFile(ctx context.Context, path string) (models.ContentDocument, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return models.ContentDocument{}, err
	}
	return doc, s.put(ctx, doc)
}

// Get reads one slot back from the store.
func (s *Seeder) Get(ctx context.Context, key string) (models.ContentDocument, bool, error) {
	return s.repo.Get(ctx, key)
}

func (s *Seeder) put(ctx context.Context, doc models.ContentDocument) error {
	if err := s.repo.Put(ctx, doc); err != nil {
		return fmt.Errorf("seed slot %q: %w", doc.Key, err)
	}
	s.logger.Info().Str("key", doc.Key).Int("fields", len(doc.Payload)).Msg("content slot seeded")
	return nil
}
