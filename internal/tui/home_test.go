// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/venture-portal/internal/content"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeModel_LoadsSlotsInOneBatch(t *testing.T) {
	var calls [][]string
	portal := &mockPortal{
		GetManyFunc: func(_ context.Context, keys []string) (map[string]models.ContentPayload, error) {
			calls = append(calls, keys)
			return map[string]models.ContentPayload{
				models.SlotHome: {"hero": map[string]any{"title": "Patient capital"}},
				models.SlotGlobalSettings: {
					"site_name":    "Harbor Ventures",
					"announcement": "Fund III is open",
				},
			}, nil
		},
	}
	m := NewHomeModel(context.Background(), portal, anonymous())

	msg := exec(m.Init())
	require.IsType(t, homeLoadedMsg{}, msg)
	_, _ = m.Update(msg)

	require.Len(t, calls, 1)
	assert.ElementsMatch(t, []string{models.SlotHome, models.SlotFooter, models.SlotGlobalSettings}, calls[0])

	view := m.View()
	assert.Contains(t, view, "HARBOR VENTURES")
	assert.Contains(t, view, "Fund III is open")
	assert.Contains(t, view, "Patient capital")
	// footer slot missing: default footer is served whole
	assert.Contains(t, view, content.DefaultFooter().Tagline)
}

func TestHomeModel_FailureKeepsDefaults(t *testing.T) {
	portal := &mockPortal{
		GetManyFunc: func(context.Context, []string) (map[string]models.ContentPayload, error) {
			return nil, errors.New("dial tcp 127.0.0.1:8080: connection refused")
		},
	}
	m := NewHomeModel(context.Background(), portal, anonymous())

	_, _ = m.Update(exec(m.Init()))

	view := m.View()
	assert.Contains(t, view, content.DefaultHome().Hero.Title)
	assert.Contains(t, view, "server is unavailable")
}

func TestHomeModel_MenuFollowsSession(t *testing.T) {
	labels := func(items []menuItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.label)
		}
		return out
	}

	t.Run("loading", func(t *testing.T) {
		s := &mockSession{state: models.SessionState{Loading: true}}
		got := labels(NewHomeModel(context.Background(), &mockPortal{}, s).items())
		assert.NotContains(t, got, "Sign in")
		assert.Contains(t, got, "Apply / get in touch")
	})

	t.Run("anonymous", func(t *testing.T) {
		got := labels(NewHomeModel(context.Background(), &mockPortal{}, anonymous()).items())
		assert.Contains(t, got, "Sign in")
		assert.Contains(t, got, "Create account")
	})

	t.Run("unverified", func(t *testing.T) {
		got := labels(NewHomeModel(context.Background(), &mockPortal{}, signedIn(false, false)).items())
		assert.Contains(t, got, "Confirm email")
		assert.Contains(t, got, "Sign out (ada@example.com)")
	})

	t.Run("client", func(t *testing.T) {
		got := labels(NewHomeModel(context.Background(), &mockPortal{}, signedIn(true, true)).items())
		assert.NotContains(t, got, "Confirm email")
		assert.Contains(t, got, "Sign out (ada@example.com)")
	})
}

func TestHomeModel_EnterNavigates(t *testing.T) {
	m := NewHomeModel(context.Background(), &mockPortal{}, anonymous())

	_, cmd := m.Update(keyPress("enter"))
	assert.Equal(t, NavigateTo{Page: pagePage, Payload: openPageMsg{key: models.SlotAbout}}, exec(cmd))

	for range pageSlots {
		_, _ = m.Update(keyPress("down"))
	}
	_, cmd = m.Update(keyPress("enter"))
	assert.Equal(t, NavigateTo{Page: pageForms}, exec(cmd))
}

func TestHomeModel_SignOut(t *testing.T) {
	s := signedIn(true, true)
	m := NewHomeModel(context.Background(), &mockPortal{}, s)

	items := m.items()
	for range items {
		_, _ = m.Update(keyPress("down"))
	}
	_, cmd := m.Update(keyPress("enter"))
	msg := exec(cmd)

	assert.Equal(t, authResultMsg{}, msg)
	assert.Equal(t, 1, s.signOuts)

	// the menu shrinks back to the anonymous entries
	_, _ = m.Update(sessionChangedMsg{})
	assert.Less(t, m.idx, len(m.items()))
}
