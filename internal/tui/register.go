// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/venture-portal/internal/validators"
	"github.com/MKhiriev/venture-portal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regEmail = iota
	regPassword
	regRepeat
	regFullName
	regCompany
	regPhone
)

var registerLabels = []string{"Email", "Password", "Repeat password", "Full name", "Company", "Phone"}

// RegisterModel is the Bubble Tea model for the client sign-up screen. It
// creates the account and the client profile in one step, then sends the
// visitor to the email confirmation screen.
type RegisterModel struct {
	ctx     context.Context
	session Session

	inputs     []textinput.Model
	focus      int
	returnTo   string
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with six inputs. The email
// field receives focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, session Session) *RegisterModel {
	fields := make([]textinput.Model, len(registerLabels))
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Placeholder = strings.ToLower(registerLabels[i])
		fields[i].Width = 40
		fields[i].CharLimit = 256
	}

	fields[regEmail].CharLimit = 254
	for _, i := range []int{regFullName, regCompany, regPhone} {
		fields[i].CharLimit = validators.MaxShortFieldLength
	}
	fields[regPassword].EchoMode = textinput.EchoPassword
	fields[regPassword].EchoCharacter = '*'
	fields[regRepeat].EchoMode = textinput.EchoPassword
	fields[regRepeat].EchoCharacter = '*'
	fields[regCompany].Placeholder = "company (optional)"
	fields[regPhone].Placeholder = "phone (optional)"
	fields[regEmail].Focus()

	return &RegisterModel{
		ctx:     ctx,
		session: session,
		inputs:  fields,
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [openAuthMsg]  : remembers where to return after confirmation.
//   - [authResultMsg]: on error, populates errMsg; on success, resets the
//     form and opens the confirmation screen.
//   - esc            : navigates back home.
//   - tab, shift+tab : moves focus between inputs.
//   - enter          : validates inputs (email, password and full name are
//     required; passwords must match) and dispatches the async sign-up command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		m.errMsg = ""
		m.resetForm()
		next := "/" + pageConfirm
		if m.returnTo != "" {
			next += "?returnTo=" + m.returnTo
		}
		return m, navigate(next)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate("/")
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[regEmail].Value())
			pass := m.inputs[regPassword].Value()
			repeat := m.inputs[regRepeat].Value()
			fields := models.ProfileFields{
				FullName:    strings.TrimSpace(m.inputs[regFullName].Value()),
				CompanyName: strings.TrimSpace(m.inputs[regCompany].Value()),
				Phone:       strings.TrimSpace(m.inputs[regPhone].Value()),
			}

			if email == "" || pass == "" || fields.FullName == "" {
				m.errMsg = "Email, password and full name are required"
				return m, nil
			}
			if pass != repeat {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignUp(email, pass, fields)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-16s │ %s\n", "Field", "Value"))
	b.WriteString(strings.Repeat("─", 17))
	b.WriteString("┼")
	b.WriteString(strings.Repeat("─", 42))
	b.WriteString("\n")
	for i, label := range registerLabels {
		b.WriteString(fmt.Sprintf("%-16s │ [%s]\n", label, m.inputs[i].View()))
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]")
	} else {
		b.WriteString("\n[Create account]")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("CREATE CLIENT ACCOUNT", b.String(), "esc: back │ tab: next field │ enter: create")
}

func (m *RegisterModel) cmdSignUp(email, pass string, fields models.ProfileFields) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return authResultMsg{err: session.SignUp(ctx, email, pass, fields)}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
