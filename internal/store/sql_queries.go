// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/venture-portal/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	tableContent  = "content_documents"
	tableInquiry  = "inquiries"
	tableUsers    = "users"
	tableProfiles = "client_profiles"
)

var (
	contentColumns = []string{"key", "payload", "updated_at"}
	userColumns    = []string{"user_id", "email", "password_hash", "email_confirmed_at", "created_at"}
	profileColumns = []string{"profile_id", "user_id", "full_name", "company_name", "phone", "created_at"}
)

func buildSelectContentQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.Select(contentColumns...).
		From(tableContent).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectContentsQuery(b sq.StatementBuilderType, keys []string) (string, []any, error) {
	query, args, err := b.Select(contentColumns...).
		From(tableContent).
		Where(sq.Eq{"key": keys}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertContentQuery replaces the payload of an existing slot wholesale.
func buildUpsertContentQuery(b sq.StatementBuilderType, key string, payload string, updatedAt time.Time) (string, []any, error) {
	query, args, err := b.Insert(tableContent).
		Columns(contentColumns...).
		Values(key, payload, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertInquiryQuery(b sq.StatementBuilderType, record models.InquiryRecord, metadata string) (string, []any, error) {
	query, args, err := b.Insert(tableInquiry).
		Columns("id", "type", "name", "email", "phone", "company_name", "subject", "message", "metadata", "created_at").
		Values(
			record.ID,
			record.Type,
			record.Name,
			record.Email,
			nullString(record.Phone),
			nullString(record.CompanyName),
			record.Subject,
			record.Message,
			metadata,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(tableUsers).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(tableUsers).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildConfirmEmailQuery keeps the first confirmation timestamp.
func buildConfirmEmailQuery(b sq.StatementBuilderType, userID int64, at time.Time) (string, []any, error) {
	query, args, err := b.Update(tableUsers).
		Set("email_confirmed_at", sq.Expr("COALESCE(email_confirmed_at, ?)", at)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectProfileQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertProfileQuery(b sq.StatementBuilderType, profile models.ClientProfile) (string, []any, error) {
	query, args, err := b.Insert(tableProfiles).
		Columns("user_id", "full_name", "company_name", "phone", "created_at").
		Values(
			profile.UserID,
			profile.FullName,
			nullString(profile.CompanyName),
			nullString(profile.Phone),
			profile.CreatedAt,
		).
		Suffix("RETURNING profile_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
