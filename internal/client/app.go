// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/tui"
	"github.com/MKhiriev/venture-portal/internal/workers"
)

var ErrNilDependency = errors.New("client dependency is nil")

type App struct {
	ui      UI
	session workers.SessionRefresher
	workers *workers.Workers
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ui UI, session workers.SessionRefresher, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if ui == nil || session == nil {
		return nil, ErrNilDependency
	}

	return &App{
		ui:      ui,
		session: session,
		workers: workers.New(
			workers.NewSessionPoller(session, cfg.SessionPollInterval, log),
		),
		logger: log,
	}, nil
}

// Run loads the session, starts the background workers and blocks on the
// UI. Workers are stopped before Run returns. Quitting the UI is not an
// error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// An unreachable server still lets the visitor browse default content.
	if err := a.session.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial session load failed")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.workers.Run(ctx)
	}()

	err := a.ui.Run(ctx)
	cancel()
	<-done

	if err != nil && !tui.IsUserQuit(err) {
		return fmt.Errorf("client ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
