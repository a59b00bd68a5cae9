// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listMsg runs the list command out of a batch.
func listMsg(t *testing.T, m *FormsModel) tea.Msg {
	t.Helper()
	msg := exec(m.cmdList())
	require.IsType(t, formsLoadedMsg{}, msg)
	return msg
}

func TestFormsModel_ListsCatalog(t *testing.T) {
	portal := &mockPortal{
		ListFormsFunc: func(context.Context) ([]models.FormDefinition, error) {
			return forms.DefaultCatalog().List(), nil
		},
	}
	m := NewFormsModel(context.Background(), portal)
	require.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading...")

	_, _ = m.Update(listMsg(t, m))

	view := m.View()
	for _, def := range forms.DefaultCatalog().List() {
		assert.Contains(t, view, def.Title)
	}
	assert.Contains(t, view, "clients only")

	_, _ = m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("enter"))
	want := forms.DefaultCatalog().List()[1].Type
	assert.Equal(t, NavigateTo{Page: pageForm, Payload: openFormMsg{formType: want}}, exec(cmd))
}

func TestFormsModel_Error(t *testing.T) {
	portal := &mockPortal{
		ListFormsFunc: func(context.Context) ([]models.FormDefinition, error) {
			return nil, errors.New("bad gateway")
		},
	}
	m := NewFormsModel(context.Background(), portal)
	m.Init()

	_, _ = m.Update(listMsg(t, m))

	assert.Contains(t, m.View(), "bad gateway")

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
}
