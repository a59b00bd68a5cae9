// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/stretchr/testify/require"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return newDB(conn, driverPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}
