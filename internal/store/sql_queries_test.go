// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/venture-portal/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectContentQuery(t *testing.T) {
	query, args, err := buildSelectContentQuery(pgBuilder, "home")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select key, payload, updated_at")
	assert.Contains(t, q, "from content_documents")
	assert.Contains(t, query, "key = $1")
	assert.Equal(t, []any{"home"}, args)
}

func Test_buildSelectContentsQuery(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		keys        []string
		placeholder string
	}{
		{name: "postgres", builder: pgBuilder, keys: []string{"home", "footer", "global_settings"}, placeholder: "IN ($1,$2,$3)"},
		{name: "sqlite", builder: sqliteBuilder, keys: []string{"home", "footer"}, placeholder: "IN (?,?)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectContentsQuery(tt.builder, tt.keys)
			require.NoError(t, err)

			assert.Contains(t, query, tt.placeholder)
			assert.Contains(t, strings.ToLower(query), "order by key")
			require.Len(t, args, len(tt.keys))
			for i, k := range tt.keys {
				assert.Equal(t, k, args[i])
			}
		})
	}
}

func Test_buildUpsertContentQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpsertContentQuery(pgBuilder, "home", `{"title":"x"}`, at)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO content_documents")
	assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE SET payload = excluded.payload")
	assert.Equal(t, []any{"home", `{"title":"x"}`, at}, args)
}

func Test_buildInsertInquiryQuery(t *testing.T) {
	record := models.InquiryRecord{
		ID:      "id-1",
		Type:    "consulting",
		Name:    "Ann",
		Email:   "a@x.io",
		Subject: "Consulting Inquiry",
		Message: "hi",
	}

	query, args, err := buildInsertInquiryQuery(pgBuilder, record, "{}")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO inquiries")
	assert.Contains(t, query, "$10")
	require.Len(t, args, 10)
	assert.Equal(t, "id-1", args[0])
	assert.Nil(t, args[4], "empty phone is stored as NULL")
	assert.Nil(t, args[5], "empty company is stored as NULL")
	assert.Equal(t, "{}", args[8])
}

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(sqliteBuilder, models.User{Email: "a@x.io", PasswordHash: "hash"})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users (email,password_hash,created_at) VALUES (?,?,?)")
	assert.True(t, strings.HasSuffix(query, "RETURNING user_id"))
	assert.Len(t, args, 3)
}

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(pgBuilder, sq.Eq{"email": "a@x.io"})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users WHERE email = $1")
	assert.Equal(t, []any{"a@x.io"}, args)
}

func Test_buildConfirmEmailQuery(t *testing.T) {
	at := time.Now()

	query, args, err := buildConfirmEmailQuery(pgBuilder, 7, at)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE users SET email_confirmed_at = COALESCE(email_confirmed_at, $1) WHERE user_id = $2")
	assert.Equal(t, []any{at, int64(7)}, args)
}

func Test_buildProfileQueries(t *testing.T) {
	query, args, err := buildSelectProfileQuery(pgBuilder, 3)
	require.NoError(t, err)
	assert.Contains(t, query, "FROM client_profiles WHERE user_id = $1")
	assert.Equal(t, []any{int64(3)}, args)

	query, args, err = buildInsertProfileQuery(pgBuilder, models.ClientProfile{UserID: 3, FullName: "Ann", Phone: "+1"})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO client_profiles")
	assert.True(t, strings.HasSuffix(query, "RETURNING profile_id"))
	require.Len(t, args, 5)
	assert.Nil(t, args[2])
	assert.Equal(t, "+1", args[3])
}
