// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/gate"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormsModel lists the intake forms served by the portal.
type FormsModel struct {
	ctx    context.Context
	portal Portal

	defs    []models.FormDefinition
	idx     int
	loading bool
	errMsg  string
	spinner spinner.Model
}

func NewFormsModel(ctx context.Context, portal Portal) *FormsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &FormsModel{ctx: ctx, portal: portal, spinner: s}
}

func (m *FormsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdList())
}

func (m *FormsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case formsLoadedMsg:
		m.loading = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.defs = msg.defs
		}
		if m.idx >= len(m.defs) {
			m.idx = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate("/")
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.defs)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		case key.Matches(msg, keys.enter):
			if len(m.defs) == 0 {
				return m, nil
			}
			return m, navigate(formLocation(m.defs[m.idx].Type))
		}
	}

	return m, nil
}

func (m *FormsModel) View() string {
	if m.loading {
		return renderPage("FORMS", m.spinner.View()+" "+gate.LoadingText, "esc: back")
	}

	var b strings.Builder

	titleWidth := lipgloss.Width("Form")
	for _, d := range m.defs {
		if w := lipgloss.Width(d.Title); w > titleWidth {
			titleWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("  %-*s │ %s\n", titleWidth, "Form", "Access"))
	b.WriteString(strings.Repeat("─", titleWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 12))
	b.WriteString("\n")

	for i, d := range m.defs {
		access := "everyone"
		if d.ClientsOnly {
			access = "clients only"
		}
		b.WriteString(fmt.Sprintf("%s %-*s │ %s\n", cursor(i == m.idx), titleWidth, d.Title, access))
	}

	if len(m.defs) > 0 && m.defs[m.idx].Description != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fitText(m.defs[m.idx].Description, 72)))
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("FORMS", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ r: reload │ esc: back")
}

func (m *FormsModel) cmdList() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		defs, err := portal.ListForms(ctx)
		return formsLoadedMsg{defs: defs, err: err}
	}
}
