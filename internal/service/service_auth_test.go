// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/mock"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:         "sign",
	TokenIssuer:          "portal",
	TokenDuration:        time.Hour,
	ConfirmTokenDuration: time.Hour,
	Version:              "1.0.0",
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	return svc, repo
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "ada@example.com", u.Email)
			assert.Empty(t, u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))
			u.UserID = 42
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.SignUpRequest{Email: " Ada@Example.com ", Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_RegisterUser_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.SignUpRequest{Email: "bad", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(ctx, models.SignUpRequest{Email: "ada@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
	_, err = svc.RegisterUser(ctx, models.SignUpRequest{Email: "ada@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := models.User{UserID: 7, Email: "ada@example.com", PasswordHash: ""}

	tests := []struct {
		name     string
		req      models.SignUpRequest
		setup    func(repo *mock.MockUserRepository, hash string)
		wantErr  error
		wantUser int64
	}{
		{
			name: "success",
			req:  models.SignUpRequest{Email: "ADA@example.com", Password: "correct horse"},
			setup: func(repo *mock.MockUserRepository, hash string) {
				u := stored
				u.PasswordHash = hash
				repo.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(u, nil)
			},
			wantUser: 7,
		},
		{
			name: "wrong password",
			req:  models.SignUpRequest{Email: "ada@example.com", Password: "wrong"},
			setup: func(repo *mock.MockUserRepository, hash string) {
				u := stored
				u.PasswordHash = hash
				repo.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(u, nil)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name: "unknown email",
			req:  models.SignUpRequest{Email: "who@example.com", Password: "x"},
			setup: func(repo *mock.MockUserRepository, _ string) {
				repo.EXPECT().FindUserByEmail(ctx, "who@example.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongCredentials,
		},
		{
			name: "storage failure",
			req:  models.SignUpRequest{Email: "ada@example.com", Password: "x"},
			setup: func(repo *mock.MockUserRepository, _ string) {
				repo.EXPECT().FindUserByEmail(ctx, "ada@example.com").Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
		{
			name:    "empty password",
			req:     models.SignUpRequest{Email: "ada@example.com"},
			setup:   func(*mock.MockUserRepository, string) {},
			wantErr: ErrInvalidDataProvided,
		},
	}

	hash := hashOf(t, "correct horse")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := newTestAuthSvc(t, ctrl)
			tt.setup(repo, hash)

			user, err := svc.Login(ctx, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.UserID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestAuthService_Tokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{UserID: 5}

	session, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, session.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)

	confirm, err := svc.CreateConfirmationToken(ctx, user)
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, confirm.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "confirmation token must not open a session")

	_, err = svc.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	confirm, err := svc.CreateConfirmationToken(ctx, models.User{UserID: 9})
	require.NoError(t, err)
	session, err := svc.CreateToken(ctx, models.User{UserID: 9})
	require.NoError(t, err)

	repo.EXPECT().ConfirmEmail(ctx, int64(9), fixed).Return(nil)
	require.NoError(t, svc.ConfirmEmail(ctx, confirm.SignedString))

	assert.ErrorIs(t, svc.ConfirmEmail(ctx, session.SignedString), ErrTokenIsExpiredOrInvalid)

	repo.EXPECT().ConfirmEmail(ctx, int64(9), fixed).Return(store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.ConfirmEmail(ctx, confirm.SignedString), store.ErrNoUserWasFound)

	assert.ErrorIs(t, svc.ConfirmEmail(ctx, expiredConfirmationToken(t, 9)), ErrTokenIsExpiredOrInvalid)
}

// expiredConfirmationToken signs confirmation claims that expired a minute ago.
func expiredConfirmationToken(t *testing.T, userID int64) string {
	t.Helper()
	issued := time.Now().Add(-time.Hour)
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testAppConfig.TokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Purpose: models.PurposeConfirmEmail,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAppConfig.TokenSignKey))
	require.NoError(t, err)
	return signed
}

func TestAuthService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(3)).Return(models.User{UserID: 3, Email: "a@b.c", PasswordHash: "h"}, nil)
	user, err := svc.GetUser(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
	assert.Empty(t, user.PasswordHash)

	repo.EXPECT().FindUserByID(ctx, int64(4)).Return(models.User{}, errors.New("db down"))
	_, err = svc.GetUser(ctx, 4)
	assert.Error(t, err)
}
