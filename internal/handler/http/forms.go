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

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.FormService.ListForms(r.Context()), http.StatusOK)
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	def, err := h.services.FormService.GetForm(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, r, err, "form lookup failed")
		return
	}

	utils.WriteJSON(w, def, http.StatusOK)
}

// fingerprintKey is the metadata key carrying the keyed hash of the
// submitter address.
const fingerprintKey = "client_fingerprint"

// submitForm accepts raw form values for a catalog form and stores the
// normalized inquiry.
func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	var submission models.FormSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "form submission body rejected")
		return
	}

	if submission.Metadata == nil {
		submission.Metadata = map[string]any{}
	}
	submission.Metadata[fingerprintKey] = utils.HashString(utils.ClientIP(r), h.fingerprintKey)

	stored, err := h.services.InquiryService.SubmitForm(r.Context(), chi.URLParam(r, "type"), submission)
	if err != nil {
		writeError(w, r, err, "form submission failed")
		return
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}
