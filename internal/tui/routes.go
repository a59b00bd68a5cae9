// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageHome     = "home"
	pagePage     = "page"
	pageForms    = "forms"
	pageForm     = "form"
	pageLogin    = "login"
	pageRegister = "register"
	pageConfirm  = "confirm"
)

// pageSlots are the informational pages reachable from the home menu.
var pageSlots = []struct {
	key   string
	label string
}{
	{models.SlotAbout, "About"},
	{models.SlotServices, "Services"},
	{models.SlotBoard, "Board"},
	{models.SlotNews, "News"},
	{models.SlotContact, "Contact"},
}

func formLocation(formType string) string {
	return "/forms/" + formType
}

// route maps a site location such as "/forms/aum" or
// "/login?returnTo=/forms/aum" to a page switch.
func route(location string) NavigateTo {
	u, err := url.Parse(location)
	if err != nil {
		return NavigateTo{Page: pageHome}
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	returnTo := u.Query().Get("returnTo")

	switch parts[0] {
	case "", pageHome:
		return NavigateTo{Page: pageHome}
	case pageLogin:
		return NavigateTo{Page: pageLogin, Payload: openAuthMsg{returnTo: returnTo}}
	case pageRegister:
		return NavigateTo{Page: pageRegister, Payload: openAuthMsg{returnTo: returnTo}}
	case pageConfirm:
		return NavigateTo{Page: pageConfirm, Payload: openAuthMsg{returnTo: returnTo}}
	case pageForms:
		if len(parts) > 1 && parts[1] != "" {
			return NavigateTo{Page: pageForm, Payload: openFormMsg{formType: parts[1]}}
		}
		return NavigateTo{Page: pageForms}
	}

	for _, p := range pageSlots {
		if p.key == parts[0] {
			return NavigateTo{Page: pagePage, Payload: openPageMsg{key: p.key}}
		}
	}
	return NavigateTo{Page: pageHome}
}

func navigate(location string) tea.Cmd {
	nav := route(location)
	return func() tea.Msg { return nav }
}
