// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) Refresh(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func runPoller(t *testing.T, p *SessionPoller) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	return func() {
		cancelCtx()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	}
}

func TestSessionPoller_RefreshesOnEveryTick(t *testing.T) {
	r := &countingRefresher{}
	stop := runPoller(t, NewSessionPoller(r, 5*time.Millisecond, logger.Nop()))
	defer stop()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestSessionPoller_KeepsPollingAfterErrors(t *testing.T) {
	r := &countingRefresher{err: errors.New("portal unavailable")}
	stop := runPoller(t, NewSessionPoller(r, 5*time.Millisecond, logger.Nop()))
	defer stop()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestSessionPoller_DisabledInterval(t *testing.T) {
	r := &countingRefresher{}
	p := NewSessionPoller(r, 0, logger.Nop())

	done := make(chan struct{})
	go func() {
		p.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled poller must return immediately")
	}
	assert.Zero(t, r.calls.Load())
}
