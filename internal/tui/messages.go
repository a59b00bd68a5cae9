// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type openPageMsg struct {
	key string
}

type openFormMsg struct {
	formType string
}

type openAuthMsg struct {
	returnTo string
}

type sessionChangedMsg struct {
	state models.SessionState
}

type toastMsg struct {
	text    string
	failure bool
}

type clearToastMsg struct {
	seq int
}

type homeLoadedMsg struct {
	contents map[string]models.ContentPayload
	err      error
}

type pageLoadedMsg struct {
	key string
	err error
}

type formsLoadedMsg struct {
	defs []models.FormDefinition
	err  error
}

type formLoadedMsg struct {
	def models.FormDefinition
	err error
}

type formSubmittedMsg struct {
	ok  bool
	err error
}

type authResultMsg struct {
	err error
}
