// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/confirm", h.confirmEmail)

		r.Get("/api/content/{key}", h.getContent)
		r.Post("/api/content/batch", h.getContentBatch)

		r.Get("/api/forms", h.listForms)
		r.Get("/api/forms/{type}", h.getForm)
	})

	// submissions are throttled per client address
	router.Group(func(r chi.Router) {
		r.Use(h.withSubmitRateLimit)

		r.Post("/api/forms/{type}/submissions", h.submitForm)
		r.Post("/api/inquiries", h.createInquiry)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/session", h.session)
		r.Get("/api/profile", h.getProfile)
		r.Post("/api/profile", h.createProfile)
	})

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return h.withCORS(router)
}
