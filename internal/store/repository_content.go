// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

// contentRepository stores content slots in the content_documents table.
// Payloads are JSON documents (JSONB on PostgreSQL, TEXT on SQLite).
type contentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating content repository")
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contentRepository) Get(ctx context.Context, key string) (models.ContentDocument, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentQuery(r.db.builder, key)
	if err != nil {
		return models.ContentDocument{}, false, err
	}

	doc, err := scanContent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContentDocument{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.Get").Str("key", key).Msg("error reading content document")
		return models.ContentDocument{}, false, err
	}

	return doc, true, nil
}

func (r *contentRepository) GetMany(ctx context.Context, keys []string) ([]models.ContentDocument, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return nil, nil
	}

	query, args, err := buildSelectContentsQuery(r.db.builder, keys)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.GetMany").Strs("keys", keys).Msg("error querying content documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.ContentDocument, 0, len(keys))
	for rows.Next() {
		doc, err := scanContent(rows)
		if err != nil {
			log.Err(err).Str("func", "*contentRepository.GetMany").Msg("error scanning content document")
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

func (r *contentRepository) Put(ctx context.Context, doc models.ContentDocument) error {
	log := logger.FromContext(ctx)

	payload := doc.Payload
	if payload == nil {
		payload = models.ContentPayload{}
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	updatedAt := doc.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query, args, err := buildUpsertContentQuery(r.db.builder, doc.Key, string(encoded), updatedAt)
	if err != nil {
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*contentRepository.Put").Str("key", doc.Key).Msg("error upserting content document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (models.ContentDocument, error) {
	var (
		doc     models.ContentDocument
		payload []byte
	)

	if err := row.Scan(&doc.Key, &payload, &doc.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ContentDocument{}, err
		}
		return models.ContentDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	doc.Payload = models.ContentPayload{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &doc.Payload); err != nil {
			return models.ContentDocument{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
	}

	return doc, nil
}
