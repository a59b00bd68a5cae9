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

func TestContentService_GetContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockContentRepository(ctrl)
	svc := NewContentService(repo, logger.Nop())
	ctx := context.Background()

	home := models.ContentDocument{Key: "home", Payload: models.ContentPayload{"hero": "x"}}
	repo.EXPECT().Get(ctx, "home").Return(home, true, nil)
	got, err := svc.GetContent(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	repo.EXPECT().Get(ctx, "news").Return(models.ContentDocument{}, false, nil)
	_, err = svc.GetContent(ctx, "news")
	assert.ErrorIs(t, err, ErrContentNotFound)

	repo.EXPECT().Get(ctx, "about").Return(models.ContentDocument{}, false, store.ErrExecutingQuery)
	_, err = svc.GetContent(ctx, "about")
	assert.ErrorIs(t, err, store.ErrExecutingQuery)

	_, err = svc.GetContent(ctx, "Bad Key")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestContentService_GetContents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockContentRepository(ctrl)
	svc := NewContentService(repo, logger.Nop())
	ctx := context.Background()

	docs := []models.ContentDocument{{Key: "footer"}, {Key: "home"}}
	repo.EXPECT().GetMany(ctx, []string{"home", "footer"}).Return(docs, nil)

	got, err := svc.GetContents(ctx, []string{"home", "footer"})
	require.NoError(t, err)
	assert.Equal(t, docs, got)

	_, err = svc.GetContents(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
