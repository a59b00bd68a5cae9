// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/venture-portal/internal/adapter"
	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
)

func TestToastNotifier(t *testing.T) {
	n := newToastNotifier()

	n.Success("saved")
	n.Failure("failed")

	assert.Equal(t, toastMsg{text: "saved"}, exec(waitForToast(n.ch)))
	assert.Equal(t, toastMsg{text: "failed", failure: true}, exec(waitForToast(n.ch)))
}

func TestToastNotifier_FullQueueDoesNotBlock(t *testing.T) {
	n := newToastNotifier()

	for i := 0; i < cap(n.ch)+5; i++ {
		n.Success(fmt.Sprintf("toast %d", i))
	}

	assert.Len(t, n.ch, cap(n.ch))
}

func TestWaitForSession(t *testing.T) {
	ch := make(chan models.SessionState, 1)
	ch <- models.SessionState{Loading: true}

	assert.Equal(t, sessionChangedMsg{state: models.SessionState{Loading: true}}, exec(waitForSession(ch)))
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unauthorized", err: fmt.Errorf("login: %w", adapter.ErrUnauthorized), want: "Wrong email or password"},
		{name: "conflict", err: adapter.ErrConflict, want: "An account with this email already exists"},
		{name: "required", err: errors.Join(fmt.Errorf("%w: name", forms.ErrRequiredField)), want: "Please fill in every required field"},
		{name: "network", err: errors.New("Post \"http://x\": dial tcp: connection refused"), want: "No network connection or the server is unavailable"},
		{name: "other", err: errors.New("teapot"), want: "teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
