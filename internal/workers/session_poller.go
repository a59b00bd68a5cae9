// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/venture-portal/internal/logger"
)

// SessionPoller refreshes the session on a fixed interval so that changes
// made elsewhere (a confirmed email, a newly created profile) reach the
// access gate without a restart.
type SessionPoller struct {
	refresher SessionRefresher
	interval  time.Duration

	logger *logger.Logger
}

func NewSessionPoller(refresher SessionRefresher, interval time.Duration, logger *logger.Logger) *SessionPoller {
	return &SessionPoller{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

// Run refreshes once per tick until ctx is done. Refresh failures are logged
// and the next tick tries again.
func (p *SessionPoller) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Warn().Dur("interval", p.interval).Msg("session poller disabled")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug().Msg("session poller stopped")
			return
		case <-ticker.C:
			if err := p.refresher.Refresh(ctx); err != nil && ctx.Err() == nil {
				p.logger.Warn().Err(err).Msg("session refresh failed")
			}
		}
	}
}
