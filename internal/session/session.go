// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the client-side session: the signed-in user, their
// client profile and the listeners interested in changes to either.
//
// A [Manager] is created once by the client application and passed to every
// component that reads or changes the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/venture-portal/internal/adapter"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

var (
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrProfileNotSaved  = errors.New("account created but client profile was not saved")
)

// Backend is the part of the portal API the session depends on.
type Backend interface {
	SetToken(token string)
	Token() string
	Register(ctx context.Context, req models.SignUpRequest) (string, error)
	Login(ctx context.Context, req models.SignUpRequest) (string, error)
	ConfirmEmail(ctx context.Context, confirmationToken string) error
	Session(ctx context.Context) (models.SessionResponse, error)
	CreateProfile(ctx context.Context, fields models.ProfileFields) (models.ClientProfile, error)
}

// Listener receives every new session state.
type Listener func(models.SessionState)

// Manager holds the current session state. It starts in the loading state
// until the first [Manager.Refresh] completes.
type Manager struct {
	backend Backend
	logger  *logger.Logger

	mu        sync.RWMutex
	state     models.SessionState
	listeners map[uint64]Listener
	nextID    uint64

	// generation changes whenever the signed-in identity does. A refresh
	// started under an older generation is discarded.
	generation uint64
}

func NewManager(backend Backend, log *logger.Logger) *Manager {
	return &Manager{
		backend:   backend,
		logger:    log,
		state:     models.SessionState{Loading: true},
		listeners: make(map[uint64]Listener),
	}
}

// CurrentSession returns a snapshot of the session state.
func (m *Manager) CurrentSession() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// OnSessionChange registers cb and returns a function that removes it.
func (m *Manager) OnSessionChange(cb Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = cb
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// SignIn authenticates and reloads the session.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	req, err := credentials(email, password)
	if err != nil {
		return err
	}

	if _, err = m.backend.Login(ctx, req); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	m.nextGeneration()
	m.logger.Info().Str("email", req.Email).Msg("signed in")

	return m.Refresh(ctx)
}

// SignUp registers an account, stores the client profile and reloads the
// session. If the profile cannot be saved the account stays signed in and
// [ErrProfileNotSaved] is returned.
func (m *Manager) SignUp(ctx context.Context, email, password string, fields models.ProfileFields) error {
	req, err := credentials(email, password)
	if err != nil {
		return err
	}

	if _, err = m.backend.Register(ctx, req); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	m.nextGeneration()
	m.logger.Info().Str("email", req.Email).Msg("account registered")

	_, profileErr := m.backend.CreateProfile(ctx, fields)
	if profileErr != nil {
		m.logger.Err(profileErr).Msg("client profile was not created")
	}

	if err = m.Refresh(ctx); err != nil {
		return err
	}
	if profileErr != nil {
		return fmt.Errorf("%w: %w", ErrProfileNotSaved, profileErr)
	}
	return nil
}

// ConfirmEmail submits the confirmation token and reloads the session.
func (m *Manager) ConfirmEmail(ctx context.Context, confirmationToken string) error {
	confirmationToken = strings.TrimSpace(confirmationToken)
	if confirmationToken == "" {
		return fmt.Errorf("confirm email: %w", adapter.ErrBadRequest)
	}
	if err := m.backend.ConfirmEmail(ctx, confirmationToken); err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}

	return m.Refresh(ctx)
}

// SignOut drops the bearer token and switches to the anonymous state.
// Refreshes still in flight are discarded.
func (m *Manager) SignOut(_ context.Context) error {
	m.backend.SetToken("")
	m.logger.Info().Msg("signed out")
	m.commit(m.nextGeneration(), models.SessionState{})
	return nil
}

// Refresh re-reads the user and profile from the server. An expired or
// rejected token signs the user out. Other failures keep the previous
// state, leave the loading state and are returned. If the identity changed
// while the request was running, the result is dropped.
func (m *Manager) Refresh(ctx context.Context) error {
	gen := m.currentGeneration()

	if m.backend.Token() == "" {
		m.commit(gen, models.SessionState{})
		return nil
	}

	resp, err := m.backend.Session(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		if m.commit(gen, models.SessionState{}) {
			m.logger.Warn().Msg("session token rejected, signing out")
			m.backend.SetToken("")
		}
		return nil
	}
	if err != nil {
		prev := m.CurrentSession()
		prev.Loading = false
		m.commit(gen, prev)
		return fmt.Errorf("refresh session: %w", err)
	}

	user := resp.User
	if !m.commit(gen, models.SessionState{User: &user, Profile: resp.Profile}) {
		m.logger.Debug().Msg("stale session refresh dropped")
	}
	return nil
}

func (m *Manager) currentGeneration() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

func (m *Manager) nextGeneration() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	return m.generation
}

// commit stores state and notifies listeners unless gen is stale.
func (m *Manager) commit(gen uint64, state models.SessionState) bool {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return false
	}
	m.state = state
	listeners := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		listeners = append(listeners, l)
	}
	m.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return true
}

func credentials(email, password string) (models.SignUpRequest, error) {
	req := models.SignUpRequest{Email: strings.TrimSpace(email), Password: password}
	if req.Email == "" || req.Password == "" {
		return req, ErrEmptyCredentials
	}
	return req, nil
}
