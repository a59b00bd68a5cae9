// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

// IDGenerator issues primary keys for new inquiries.
type IDGenerator interface {
	Generate() string
}

type inquiryRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewInquiryRepository(db *DB, ids IDGenerator, logger *logger.Logger) InquiryRepository {
	logger.Debug().Msg("creating inquiry repository")
	return &inquiryRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// Create inserts record with a fresh ID and creation time and returns the
// stored record.
func (r *inquiryRepository) Create(ctx context.Context, record models.InquiryRecord) (models.InquiryRecord, error) {
	log := logger.FromContext(ctx)

	record.ID = r.ids.Generate()
	record.CreatedAt = time.Now().UTC()

	metadata := record.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	encoded, err := json.Marshal(metadata)
	if err != nil {
		return models.InquiryRecord{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	query, args, err := buildInsertInquiryQuery(r.db.builder, record, string(encoded))
	if err != nil {
		return models.InquiryRecord{}, err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*inquiryRepository.Create").
			Str("type", record.Type).
			Msg("failed to insert inquiry")
		return models.InquiryRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().Str("func", "*inquiryRepository.Create").Msg("no rows affected inserting inquiry")
		return models.InquiryRecord{}, ErrInquiryNotSaved
	}

	return record, nil
}
