// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/service"
	"github.com/MKhiriev/venture-portal/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrNoUserInContext: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrValidationMissingRequired: http.StatusUnprocessableEntity,
	service.ErrWrongCredentials:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrTokenCreationFailed:       http.StatusInternalServerError,
	service.ErrContentNotFound:           http.StatusNotFound,
	service.ErrProfileNotFound:           http.StatusNotFound,
	service.ErrFormNotFound:              http.StatusNotFound,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrProfileAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrInquiryNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingJSON:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures never leak their message to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
