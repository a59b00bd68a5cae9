// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/utils"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/go-resty/resty/v2"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs the HTTP implementation of [PortalAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// request timeout.
func NewHTTPPortalAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpPortalAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPortalAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpPortalAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials to /api/user/register and stores the bearer
// token from the Authorization response header.
func (h *httpPortalAdapter) Register(ctx context.Context, req models.SignUpRequest) (string, error) {
	return h.authenticate(ctx, "/api/user/register", req)
}

// Login POSTs the credentials to /api/user/login and stores the bearer token
// from the Authorization response header.
func (h *httpPortalAdapter) Login(ctx context.Context, req models.SignUpRequest) (string, error) {
	return h.authenticate(ctx, "/api/user/login", req)
}

func (h *httpPortalAdapter) authenticate(ctx context.Context, path string, req models.SignUpRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("bearer token stored")
	return token, nil
}

func (h *httpPortalAdapter) ConfirmEmail(ctx context.Context, confirmationToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ConfirmEmailRequest{Token: confirmationToken}).
		Post("/api/user/confirm")
	if err != nil {
		return fmt.Errorf("confirm email request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) Session(ctx context.Context) (models.SessionResponse, error) {
	var session models.SessionResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&session).
		Get("/api/user/session")
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	return session, nil
}

func (h *httpPortalAdapter) GetProfile(ctx context.Context) (models.ClientProfile, bool, error) {
	var profile models.ClientProfile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.ClientProfile{}, false, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.ClientProfile{}, false, nil
		}
		return models.ClientProfile{}, false, err
	}

	return profile, true, nil
}

func (h *httpPortalAdapter) CreateProfile(ctx context.Context, fields models.ProfileFields) (models.ClientProfile, error) {
	var profile models.ClientProfile

	resp, err := h.authedRequest(ctx).
		SetBody(fields).
		SetResult(&profile).
		Post("/api/profile")
	if err != nil {
		return models.ClientProfile{}, fmt.Errorf("create profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClientProfile{}, err
	}

	return profile, nil
}

// Get implements the content read interface over GET /api/content/{key}.
func (h *httpPortalAdapter) Get(ctx context.Context, key string) (models.ContentPayload, bool, error) {
	var doc models.ContentDocument

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("key", key).
		SetResult(&doc).
		Get("/api/content/{key}")
	if err != nil {
		return nil, false, fmt.Errorf("get content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return doc.Payload, true, nil
}

// GetMany implements the batched content read over POST /api/content/batch.
func (h *httpPortalAdapter) GetMany(ctx context.Context, keys []string) (map[string]models.ContentPayload, error) {
	var batch models.ContentBatchResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ContentBatchRequest{Keys: keys}).
		SetResult(&batch).
		Post("/api/content/batch")
	if err != nil {
		return nil, fmt.Errorf("get content batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make(map[string]models.ContentPayload, len(batch.Documents))
	for _, doc := range batch.Documents {
		out[doc.Key] = doc.Payload
	}
	return out, nil
}

// CreateInquiry implements the inquiry write interface over POST /api/inquiries.
func (h *httpPortalAdapter) CreateInquiry(ctx context.Context, record models.InquiryRecord) error {
	resp, err := h.authedRequest(ctx).
		SetBody(record).
		Post("/api/inquiries")
	if err != nil {
		return fmt.Errorf("create inquiry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPortalAdapter) ListForms(ctx context.Context) ([]models.FormDefinition, error) {
	var defs []models.FormDefinition

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&defs).
		Get("/api/forms")
	if err != nil {
		return nil, fmt.Errorf("list forms request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return defs, nil
}

func (h *httpPortalAdapter) GetForm(ctx context.Context, formType string) (models.FormDefinition, error) {
	var def models.FormDefinition

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("type", formType).
		SetResult(&def).
		Get("/api/forms/{type}")
	if err != nil {
		return models.FormDefinition{}, fmt.Errorf("get form request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormDefinition{}, err
	}

	return def, nil
}

func (h *httpPortalAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpPortalAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
