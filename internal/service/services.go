// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
	InquiryService InquiryService
	ProfileService ProfileService
	FormService    FormService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	catalog := forms.DefaultCatalog()

	inquiryService := NewInquiryValidationService().Wrap(
		NewInquiryService(storages.InquiryRepository, catalog, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ContentService: NewContentService(storages.ContentRepository, logger),
		InquiryService: inquiryService,
		ProfileService: NewProfileService(storages.ProfileRepository, logger),
		FormService:    NewFormService(catalog),
		AppInfoService: appInfoService,
	}, nil
}
