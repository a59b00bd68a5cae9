// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/content"
	"github.com/MKhiriev/venture-portal/internal/forms"
	"github.com/MKhiriev/venture-portal/internal/gate"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PageModel shows one informational page. A single slot is rebound to the
// selected key, so a late response for a previous page is discarded.
type PageModel struct {
	ctx    context.Context
	portal Portal

	slot *content.Slot
}

func NewPageModel(ctx context.Context, portal Portal) *PageModel {
	return &PageModel{ctx: ctx, portal: portal}
}

func (m *PageModel) Init() tea.Cmd {
	return nil
}

func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openPageMsg:
		return m, m.open(msg.key)

	case pageLoadedMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate("/")
		case key.Matches(msg, keys.reload):
			if m.slot != nil {
				return m, m.cmdLoad(m.slot.Key(), m.slot.Load)
			}
		case msg.String() == "a":
			if target := m.target(); target != "" {
				return m, navigate(formLocation(target))
			}
		}
	}

	return m, nil
}

func (m *PageModel) View() string {
	if m.slot == nil {
		return renderPage("PAGE", gate.LoadingText, "esc: back")
	}

	page := m.page()

	var b strings.Builder
	if page.Intro != "" {
		b.WriteString(page.Intro)
	}
	if body := renderSections(page.Sections); body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if m.slot.Loading() {
		b.WriteString("\n\n")
		b.WriteString(gate.LoadingText)
	}
	if err := m.slot.Err(); err != nil {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Showing saved copy: " + humanizeError(err)))
	}

	hotKeys := "esc: back │ r: reload"
	if m.target() != "" {
		hotKeys += " │ a: apply"
	}

	return renderPage(strings.ToUpper(page.Title), b.String(), hotKeys)
}

// page decodes the slot for the key it is bound to right now.
func (m *PageModel) page() content.PageContent {
	return content.Decode(m.slot.Content(), content.DefaultPage(m.slot.Key()))
}

func (m *PageModel) target() string {
	if m.slot == nil {
		return ""
	}
	if t := firstCTATarget(m.page().Sections); t != "" {
		return t
	}
	if m.slot.Key() == models.SlotContact {
		return forms.TypeContact
	}
	return ""
}

func (m *PageModel) open(slotKey string) tea.Cmd {
	if m.slot == nil {
		m.slot = content.NewSlot(m.portal, slotKey, nil)
		return m.cmdLoad(slotKey, m.slot.Load)
	}
	if m.slot.Key() == slotKey {
		return nil
	}
	return m.cmdLoad(slotKey, func(ctx context.Context) error {
		return m.slot.SetKey(ctx, slotKey)
	})
}

func (m *PageModel) cmdLoad(slotKey string, load func(context.Context) error) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		return pageLoadedMsg{key: slotKey, err: load(ctx)}
	}
}
