// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the portal: content pages, the
// intake forms and the client sign-up flow.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/inquiry"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	portal    Portal
	session   Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(portal Portal, session Session, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if portal == nil || session == nil {
		return nil, ErrMissingDependency
	}
	return &TUI{
		portal:    portal,
		session:   session,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the home page and blocks until the user quits or ctx is done.
// Quitting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	notifier := newToastNotifier()
	submitter := inquiry.New(t.portal, notifier)

	sessions := make(chan models.SessionState, 1)
	unsubscribe := t.session.OnSessionChange(func(state models.SessionState) {
		select {
		case sessions <- state:
		default:
		}
	})
	defer unsubscribe()

	root := NewRootModel(t.pages(ctx, submitter), pageHome, t.buildInfo, notifier.ch, sessions)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("terminal ui closed by user")
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context, submitter *inquiry.Submitter) map[string]tea.Model {
	return map[string]tea.Model{
		pageHome:     NewHomeModel(ctx, t.portal, t.session),
		pagePage:     NewPageModel(ctx, t.portal),
		pageForms:    NewFormsModel(ctx, t.portal),
		pageForm:     NewFormModel(ctx, t.portal, t.session, submitter),
		pageLogin:    NewLoginModel(ctx, t.session),
		pageRegister: NewRegisterModel(ctx, t.session),
		pageConfirm:  NewConfirmModel(ctx, t.session),
	}
}

// IsUserQuit reports whether err means the user closed the UI.
func IsUserQuit(err error) bool {
	return errors.Is(err, ErrUserQuit)
}
