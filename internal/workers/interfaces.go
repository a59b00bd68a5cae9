// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the terminal client's background jobs.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// SessionRefresher re-reads the session from the portal API.
type SessionRefresher interface {
	Refresh(ctx context.Context) error
}
