// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel redeems the email confirmation token sent after sign-up.
type ConfirmModel struct {
	ctx     context.Context
	session Session

	input      textinput.Model
	returnTo   string
	submitting bool
	errMsg     string
}

func NewConfirmModel(ctx context.Context, session Session) *ConfirmModel {
	in := textinput.New()
	in.Placeholder = "confirmation token"
	in.CharLimit = 1024
	in.Width = 60
	in.Focus()

	return &ConfirmModel{ctx: ctx, session: session, input: in}
}

func (m *ConfirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openAuthMsg:
		m.returnTo = msg.returnTo
		m.errMsg = ""
		return m, textinput.Blink

	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.input.SetValue("")
		return m, navigate(m.returnTo)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.errMsg = ""
			return m, navigate("/")
		case "enter":
			if m.submitting {
				return m, nil
			}
			token := strings.TrimSpace(m.input.Value())
			if token == "" {
				m.errMsg = "Paste the token from the confirmation email"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdConfirm(token)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ConfirmModel) View() string {
	var b strings.Builder

	state := m.session.CurrentSession()
	if state.User != nil {
		b.WriteString("We sent a confirmation link to ")
		b.WriteString(state.User.Email)
		b.WriteString(".\n\n")
	}
	b.WriteString("Token │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Confirming...]")
	} else {
		b.WriteString("\n[Confirm]")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("CONFIRM EMAIL", b.String(), "esc: back │ enter: confirm")
}

func (m *ConfirmModel) cmdConfirm(token string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return authResultMsg{err: session.ConfirmEmail(ctx, token)}
	}
}
