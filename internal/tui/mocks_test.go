// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/venture-portal/internal/session"
	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type mockPortal struct {
	GetFunc           func(ctx context.Context, key string) (models.ContentPayload, bool, error)
	GetManyFunc       func(ctx context.Context, keys []string) (map[string]models.ContentPayload, error)
	CreateInquiryFunc func(ctx context.Context, record models.InquiryRecord) error
	ListFormsFunc     func(ctx context.Context) ([]models.FormDefinition, error)
	GetFormFunc       func(ctx context.Context, formType string) (models.FormDefinition, error)

	mu      sync.Mutex
	records []models.InquiryRecord
}

func (m *mockPortal) Get(ctx context.Context, key string) (models.ContentPayload, bool, error) {
	if m.GetFunc == nil {
		return nil, false, nil
	}
	return m.GetFunc(ctx, key)
}

func (m *mockPortal) GetMany(ctx context.Context, keys []string) (map[string]models.ContentPayload, error) {
	if m.GetManyFunc == nil {
		return map[string]models.ContentPayload{}, nil
	}
	return m.GetManyFunc(ctx, keys)
}

func (m *mockPortal) CreateInquiry(ctx context.Context, record models.InquiryRecord) error {
	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()

	if m.CreateInquiryFunc == nil {
		return nil
	}
	return m.CreateInquiryFunc(ctx, record)
}

func (m *mockPortal) ListForms(ctx context.Context) ([]models.FormDefinition, error) {
	if m.ListFormsFunc == nil {
		return nil, nil
	}
	return m.ListFormsFunc(ctx)
}

func (m *mockPortal) GetForm(ctx context.Context, formType string) (models.FormDefinition, error) {
	return m.GetFormFunc(ctx, formType)
}

type mockSession struct {
	state models.SessionState

	SignInFunc       func(ctx context.Context, email, password string) error
	SignUpFunc       func(ctx context.Context, email, password string, fields models.ProfileFields) error
	ConfirmEmailFunc func(ctx context.Context, token string) error
	SignOutFunc      func(ctx context.Context) error

	signOuts int
}

func (m *mockSession) CurrentSession() models.SessionState {
	return m.state
}

func (m *mockSession) OnSessionChange(session.Listener) func() {
	return func() {}
}

func (m *mockSession) SignIn(ctx context.Context, email, password string) error {
	return m.SignInFunc(ctx, email, password)
}

func (m *mockSession) SignUp(ctx context.Context, email, password string, fields models.ProfileFields) error {
	return m.SignUpFunc(ctx, email, password, fields)
}

func (m *mockSession) ConfirmEmail(ctx context.Context, token string) error {
	return m.ConfirmEmailFunc(ctx, token)
}

func (m *mockSession) SignOut(ctx context.Context) error {
	m.signOuts++
	m.state = models.SessionState{}
	if m.SignOutFunc == nil {
		return nil
	}
	return m.SignOutFunc(ctx)
}

func anonymous() *mockSession {
	return &mockSession{}
}

func signedIn(confirmed, client bool) *mockSession {
	user := &models.User{UserID: 7, Email: "ada@example.com"}
	if confirmed {
		now := time.Now()
		user.EmailConfirmedAt = &now
	}
	state := models.SessionState{User: user}
	if client {
		state.Profile = &models.ClientProfile{ProfileID: 1, UserID: 7, FullName: "Ada Lovelace"}
	}
	return &mockSession{state: state}
}

// exec runs cmd synchronously and returns its message.
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
