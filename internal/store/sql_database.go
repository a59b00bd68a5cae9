// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"

	maxRetryAttempts = 3
	retryBaseDelay   = 50 * time.Millisecond
)

// DB is a database/sql handle together with the query builder and error
// classifier matching its dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholderFor(driver)),
		errorClassificator: classifier,
		logger:             log,
	}
}

func placeholderFor(driver string) sq.PlaceholderFormat {
	if driver == driverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withRetry runs fn until it succeeds, returns a non-retryable error, the
// context is done or maxRetryAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	delay := retryBaseDelay

	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
		delay *= 2
	}

	return err
}
