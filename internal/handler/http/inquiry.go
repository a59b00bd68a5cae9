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

func (h *Handler) createInquiry(w http.ResponseWriter, r *http.Request) {
	var record models.InquiryRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "inquiry body rejected")
		return
	}

	// ids and timestamps are assigned on insert
	record.ID = ""

	stored, err := h.services.InquiryService.CreateInquiry(r.Context(), record)
	if err != nil {
		writeError(w, r, err, "inquiry creation failed")
		return
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}
