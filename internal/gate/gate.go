// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate decides what a visitor sees in place of client-only content.
package gate

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/venture-portal/models"
)

// View is the outcome of [Decide].
type View int

const (
	ViewLoading View = iota
	ViewClient
	ViewUnverified
	ViewNonClient
	ViewAnonymous
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewClient:
		return "client"
	case ViewUnverified:
		return "unverified"
	case ViewNonClient:
		return "non_client"
	case ViewAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Decide maps a session to a view. Rules are checked in order: loading,
// client, signed in but unconfirmed, signed in without a profile, anonymous.
func Decide(state models.SessionState) View {
	switch {
	case state.Loading:
		return ViewLoading
	case state.IsClient():
		return ViewClient
	case state.User != nil && !state.User.IsEmailConfirmed():
		return ViewUnverified
	case state.User != nil:
		return ViewNonClient
	default:
		return ViewAnonymous
	}
}

// ActionKind identifies what a card button does.
type ActionKind string

const (
	ActionLogout        ActionKind = "logout"
	ActionSwitchAccount ActionKind = "switch_account"
	ActionRegister      ActionKind = "register"
	ActionSignIn        ActionKind = "sign_in"
)

// Action is a button on a gate card. Href is where the action leads; it is
// empty for a plain logout.
type Action struct {
	Kind  ActionKind
	Label string
	Href  string
}

// Card is the structured content shown for every view except client and
// loading.
type Card struct {
	Title  string
	Body   string
	Email  string
	Notice string
	Action []Action
}

const (
	LoadingText = "Loading..."

	registerPath = "/register"
	loginPath    = "/login"
)

// CardFor builds the card for the unverified, non-client and anonymous
// views. location is the current path and is carried in returnTo links.
func CardFor(view View, state models.SessionState, location string) (Card, bool) {
	switch view {
	case ViewUnverified:
		return Card{
			Title:  "Verify your email",
			Body:   "We sent a confirmation link to",
			Email:  state.User.Email,
			Notice: "Confirm your address to access this page.",
			Action: []Action{{Kind: ActionLogout, Label: "Log out"}},
		}, true
	case ViewNonClient:
		return Card{
			Title:  "Clients only",
			Body:   "This page is available to registered clients of the firm.",
			Action: []Action{{Kind: ActionSwitchAccount, Label: "Sign in with a different account", Href: withReturnTo(loginPath, location)}},
		}, true
	case ViewAnonymous:
		return Card{
			Title: "Client access required",
			Body:  "Create a client account or sign in to continue.",
			Action: []Action{
				{Kind: ActionRegister, Label: "Create account", Href: withReturnTo(registerPath, location)},
				{Kind: ActionSignIn, Label: "Sign in", Href: withReturnTo(loginPath, location)},
			},
		}, true
	default:
		return Card{}, false
	}
}

// Render returns what to display for state: a loading indicator, children
// unchanged for clients, or a text rendering of the card.
func Render(state models.SessionState, children, location string) string {
	view := Decide(state)

	switch view {
	case ViewLoading:
		return LoadingText
	case ViewClient:
		return children
	}

	card, _ := CardFor(view, state, location)
	return card.String()
}

func (c Card) String() string {
	var b strings.Builder

	b.WriteString(c.Title)
	b.WriteString("\n\n")
	b.WriteString(c.Body)
	if c.Email != "" {
		b.WriteString(" ")
		b.WriteString(c.Email)
	}
	if c.Notice != "" {
		b.WriteString("\n")
		b.WriteString(c.Notice)
	}
	for _, a := range c.Action {
		b.WriteString("\n[")
		b.WriteString(a.Label)
		b.WriteString("]")
		if a.Href != "" {
			b.WriteString(" ")
			b.WriteString(a.Href)
		}
	}

	return b.String()
}

func withReturnTo(path, location string) string {
	if location == "" {
		return path
	}
	return path + "?" + url.Values{"returnTo": {location}}.Encode()
}
