// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/service"
	"github.com/MKhiriev/venture-portal/internal/utils"
	"github.com/MKhiriev/venture-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "sign up body rejected")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	// There is no mailer yet: the confirmation token is handed to operators
	// through the log.
	confirmation, err := h.services.AuthService.CreateConfirmationToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("creation of confirmation token failed")
	} else {
		log.Info().
			Int64("id", registeredUser.UserID).
			Str("email", registeredUser.Email).
			Str("confirmation_token", confirmation.SignedString).
			Msg("email confirmation pending")
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "sign in body rejected")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "confirmation body rejected")
		return
	}

	if err := h.services.AuthService.ConfirmEmail(r.Context(), req.Token); err != nil {
		writeError(w, r, err, "email confirmation failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// session reports the authenticated user and, when one exists, their client
// profile. A missing profile is not an error.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "session requested without user")
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err, "session user lookup failed")
		return
	}

	resp := models.SessionResponse{User: user}

	profile, err := h.services.ProfileService.GetProfile(ctx, userID)
	switch {
	case err == nil:
		resp.Profile = &profile
	case errors.Is(err, service.ErrProfileNotFound):
	default:
		writeError(w, r, err, "session profile lookup failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
