// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS lets the configured browser origins call the API. The bearer
// token and trace id are exposed so that browser clients can read them.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	if len(h.cfg.CORSAllowedOrigins) == 0 {
		return next
	}

	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         600,
	}).Handler(next)
}
