// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBearer = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.signature"

func newTestAdapter(t *testing.T, serverURL string) *httpPortalAdapter {
	t.Helper()
	a, err := NewHTTPPortalAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPortalAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://portal.example/ ", want: "https://portal.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var req models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)

		w.Header().Set("Authorization", "Bearer "+testBearer)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Register(context.Background(), models.SignUpRequest{Email: "ada@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, testBearer, token)
	assert.Equal(t, testBearer, a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  string
		wantErr error
	}{
		{name: "bad credentials", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "duplicate", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(http.StatusText(tt.status)))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.SignUpRequest{Email: "a@b.c", Password: "x"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, a.Token())
		})
	}
}

func TestLogin_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.SignUpRequest{Email: "a@b.c", Password: "x"})

	assert.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestSession_SendsBearer(t *testing.T) {
	confirmed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/session", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer "+testBearer {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, models.SessionResponse{
			User:    models.User{Email: "ada@example.com", EmailConfirmedAt: &confirmed},
			Profile: &models.ClientProfile{ProfileID: 3, FullName: "Ada"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Session(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" " + testBearer + " ")
	got, err := a.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.User.Email)
	require.NotNil(t, got.User.EmailConfirmedAt)
	assert.True(t, confirmed.Equal(*got.User.EmailConfirmedAt))
	require.NotNil(t, got.Profile)
	assert.Equal(t, "Ada", got.Profile.FullName)
}

func TestGetProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, found, err := a.GetProfile(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)

		var fields models.ProfileFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		writeJSON(t, w, http.StatusCreated, models.ClientProfile{ProfileID: 7, FullName: fields.FullName})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testBearer)
	got, err := a.CreateProfile(context.Background(), models.ProfileFields{FullName: "Ada"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ProfileID)
}

func TestContentGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/content/home":
			writeJSON(t, w, http.StatusOK, models.ContentDocument{Key: "home", Payload: models.ContentPayload{"hero": "x"}})
		case "/api/content/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	payload, found, err := a.Get(context.Background(), "home")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.ContentPayload{"hero": "x"}, payload)

	_, found, err = a.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, err = a.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestContentGetMany(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/content/batch", r.URL.Path)

		var req models.ContentBatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"footer", "home"}, req.Keys)

		writeJSON(t, w, http.StatusOK, models.ContentBatchResponse{Documents: []models.ContentDocument{
			{Key: "home", Payload: models.ContentPayload{"hero": "x"}},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetMany(context.Background(), []string{"footer", "home"})

	require.NoError(t, err)
	assert.Equal(t, map[string]models.ContentPayload{"home": {"hero": "x"}}, got)
}

func TestCreateInquiry(t *testing.T) {
	var received models.InquiryRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inquiries", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(t, w, http.StatusCreated, received)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateInquiry(context.Background(), models.InquiryRecord{Type: "contact", Name: "Ada", Email: "a@b.c", Subject: "Hi", Message: "m"})

	require.NoError(t, err)
	assert.Equal(t, "Ada", received.Name)
}

func TestCreateInquiry_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateInquiry(context.Background(), models.InquiryRecord{})

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

func TestForms(t *testing.T) {
	def := models.FormDefinition{Type: "contact", Title: "Contact", Fields: []models.FieldDescriptor{{ID: "name", Kind: models.FieldText}}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/forms":
			writeJSON(t, w, http.StatusOK, []models.FormDefinition{def})
		case "/api/forms/contact":
			writeJSON(t, w, http.StatusOK, def)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	list, err := a.ListForms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.FormDefinition{def}, list)

	got, err := a.GetForm(context.Background(), "contact")
	require.NoError(t, err)
	assert.Equal(t, def, got)

	_, err = a.GetForm(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirmEmailAndVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/user/confirm":
			var req models.ConfirmEmailRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Token != "good" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
		case "/api/version":
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("1.2.3\n"))
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	assert.NoError(t, a.ConfirmEmail(context.Background(), "good"))
	assert.ErrorIs(t, a.ConfirmEmail(context.Background(), "bad"), ErrBadRequest)

	v, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}
