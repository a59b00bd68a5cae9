// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     NavigateTo
	}{
		{name: "root", location: "/", want: NavigateTo{Page: pageHome}},
		{name: "empty", location: "", want: NavigateTo{Page: pageHome}},
		{name: "content page", location: "/about", want: NavigateTo{Page: pagePage, Payload: openPageMsg{key: "about"}}},
		{name: "form list", location: "/forms", want: NavigateTo{Page: pageForms}},
		{name: "form", location: "/forms/aum", want: NavigateTo{Page: pageForm, Payload: openFormMsg{formType: "aum"}}},
		{
			name:     "login with encoded return",
			location: "/login?returnTo=%2Fforms%2Faum",
			want:     NavigateTo{Page: pageLogin, Payload: openAuthMsg{returnTo: "/forms/aum"}},
		},
		{
			name:     "register with plain return",
			location: "/register?returnTo=/forms/gig",
			want:     NavigateTo{Page: pageRegister, Payload: openAuthMsg{returnTo: "/forms/gig"}},
		},
		{name: "confirm", location: "/confirm", want: NavigateTo{Page: pageConfirm, Payload: openAuthMsg{}}},
		{name: "unknown", location: "/careers", want: NavigateTo{Page: pageHome}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, route(tt.location))
		})
	}
}

func TestNavigate(t *testing.T) {
	msg := exec(navigate("/news"))
	assert.Equal(t, NavigateTo{Page: pagePage, Payload: openPageMsg{key: "news"}}, msg)
}
