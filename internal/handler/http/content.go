// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/venture-portal/internal/utils"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.ContentService.GetContent(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err, "content lookup failed")
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// getContentBatch answers with the documents that exist. Keys without a
// document are left out and the caller keeps its defaults for them.
func (h *Handler) getContentBatch(w http.ResponseWriter, r *http.Request) {
	var req models.ContentBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "content batch body rejected")
		return
	}

	docs, err := h.services.ContentService.GetContents(r.Context(), req.Keys)
	if err != nil {
		writeError(w, r, err, "batch content lookup failed")
		return
	}
	if docs == nil {
		docs = []models.ContentDocument{}
	}

	utils.WriteJSON(w, models.ContentBatchResponse{Documents: docs}, http.StatusOK)
}
