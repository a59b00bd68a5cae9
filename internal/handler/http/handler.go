// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// fingerprintKey keys the HMAC over submitter addresses.
	fingerprintKey string

	limiter  *ipRateLimiter
	metrics  *httpMetrics
	registry *prometheus.Registry

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, fingerprintKey string, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,

		fingerprintKey: fingerprintKey,

		limiter:  newIPRateLimiter(cfg.SubmitRateLimit, cfg.SubmitBurst),
		metrics:  newHTTPMetrics(registry),
		registry: registry,
		logger:   logger,
	}
}
