// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO users .* RETURNING user_id`).
		WithArgs("a@x.io", "hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	created, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io", Password: "plain", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Empty(t, created.Password)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"))
}

func TestFindUserByEmail_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	confirmed := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("a@x.io").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(5), "a@x.io", "hash", confirmed, time.Now()))

	user, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)
	require.NotNil(t, user.EmailConfirmedAt)
	assert.True(t, user.IsEmailConfirmed())
}

func TestFindUserByID_Unconfirmed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM users WHERE user_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(5), "a@x.io", "hash", nil, time.Now()))

	user, err := repo.FindUserByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, user.EmailConfirmedAt)
}

func TestFindUser_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM users`).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@x.io")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUser_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	_, err := repo.FindUserByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestConfirmEmail(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "confirmed", affected: 1},
		{name: "unknown user", affected: 0, wantErr: ErrNoUserWasFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())

			exp := mock.ExpectExec(`UPDATE users SET email_confirmed_at = COALESCE`).
				WithArgs(sqlmock.AnyArg(), int64(9))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.ConfirmEmail(context.Background(), 9, time.Now())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
