// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/utils"
)

// Storages groups the repositories backed by one database connection.
type Storages struct {
	DB                *DB
	ContentRepository ContentRepository
	InquiryRepository InquiryRepository
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// Connect opens a connection for cfg.Driver without migrating.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case driverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case driverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	return db, nil
}

// NewStoragesFromDB builds the repositories on an existing connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                db,
		ContentRepository: NewContentRepository(db, log),
		InquiryRepository: NewInquiryRepository(db, utils.NewUUIDGenerator(), log),
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
