// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/models"
)

type formService struct {
	catalog *forms.Catalog
}

func NewFormService(catalog *forms.Catalog) FormService {
	return &formService{catalog: catalog}
}

func (s *formService) ListForms(ctx context.Context) []models.FormDefinition {
	return s.catalog.List()
}

func (s *formService) GetForm(ctx context.Context, formType string) (models.FormDefinition, error) {
	def, ok := s.catalog.Get(formType)
	if !ok {
		return models.FormDefinition{}, ErrFormNotFound
	}
	return def, nil
}
