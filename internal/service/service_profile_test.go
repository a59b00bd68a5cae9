// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/mock"
	"github.com/MKhiriev/venture-portal/internal/store"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProfileRepository(ctrl)
	svc := NewProfileService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindByUserID(ctx, int64(1)).Return(models.ClientProfile{ProfileID: 2, UserID: 1}, true, nil)
	got, err := svc.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ProfileID)

	repo.EXPECT().FindByUserID(ctx, int64(5)).Return(models.ClientProfile{}, false, nil)
	_, err = svc.GetProfile(ctx, 5)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	repo.EXPECT().FindByUserID(ctx, int64(6)).Return(models.ClientProfile{}, false, store.ErrScanningRow)
	_, err = svc.GetProfile(ctx, 6)
	assert.ErrorIs(t, err, store.ErrScanningRow)
}

func TestProfileService_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockProfileRepository(ctrl)
	svc := NewProfileService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().CreateProfile(ctx, models.ClientProfile{UserID: 1, FullName: "Ada", CompanyName: "Analytical"}).
		Return(models.ClientProfile{ProfileID: 3, UserID: 1, FullName: "Ada", CompanyName: "Analytical"}, nil)

	got, err := svc.CreateProfile(ctx, 1, models.ProfileFields{FullName: " Ada ", CompanyName: "Analytical"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ProfileID)

	_, err = svc.CreateProfile(ctx, 1, models.ProfileFields{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateProfile(ctx, 0, models.ProfileFields{FullName: "Ada"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().CreateProfile(ctx, gomock.Any()).Return(models.ClientProfile{}, store.ErrProfileAlreadyExists)
	_, err = svc.CreateProfile(ctx, 1, models.ProfileFields{FullName: "Ada"})
	assert.ErrorIs(t, err, store.ErrProfileAlreadyExists)
}
