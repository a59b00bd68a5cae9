// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/venture-portal/internal/utils"
	"github.com/MKhiriev/venture-portal/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "profile requested without user")
		return
	}

	profile, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "profile lookup failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "profile creation without user")
		return
	}

	var fields models.ProfileFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "profile body rejected")
		return
	}

	profile, err := h.services.ProfileService.CreateProfile(ctx, userID, fields)
	if err != nil {
		writeError(w, r, err, "profile creation failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusCreated)
}
