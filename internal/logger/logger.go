// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the venture portal binaries.
//
// The server and the content CLI log JSON to stdout. The terminal client owns
// the screen, so its logger writes to a "logs" file next to the executable.
// Request and job scoped loggers travel in context.Context and are read back
// with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the field name carrying the request trace identifier.
const TraceIDField = "trace_id"

// clientLogFile is created next to the client executable.
const clientLogFile = "logs"

var setupOnce sync.Once

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// setupGlobals configures process-wide zerolog settings: debug level and a
// "func" caller field holding the fully-qualified function name.
func setupGlobals() {
	setupOnce.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// New builds a *Logger writing JSON to w. Every entry carries "role",
// a timestamp and the calling function.
func New(w io.Writer, role string) *Logger {
	setupGlobals()

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger returns a stdout logger for the given role ("server", "contentctl").
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger returns a logger for the terminal client. Output goes to a
// file next to the executable; stderr is used if the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stderr

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), clientLogFile)
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}

	return New(w, role)
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched independently.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with traceID and a context
// carrying it.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) (context.Context, *Logger) {
	child := l.With().Str(TraceIDField, traceID).Logger()
	return child.WithContext(ctx), &Logger{child}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached the
// result is a disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
