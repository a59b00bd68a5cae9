// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"context"
	"sync"

	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/models"
)

// SlotOption configures a [Slot].
type SlotOption func(*Slot)

// WithSkipFetch makes the slot serve its default only.
func WithSkipFetch() SlotOption {
	return func(s *Slot) {
		s.skipFetch = true
	}
}

// Slot holds the resolved content of a single slot key.
//
// Every load is tagged with a generation number. A result is applied only
// if no newer load has started since, so a slow fetch for a previous key
// never overwrites the content of the current one.
type Slot struct {
	mu sync.RWMutex

	reader    Reader
	key       string
	def       models.ContentPayload
	skipFetch bool

	content    models.ContentPayload
	loading    bool
	err        error
	generation uint64
}

// NewSlot creates a slot for key. A nil def is replaced by an empty payload.
// Unless [WithSkipFetch] is given the slot starts in the loading state and
// expects a call to [Slot.Load].
func NewSlot(reader Reader, key string, def models.ContentPayload, opts ...SlotOption) *Slot {
	if def == nil {
		def = models.ContentPayload{}
	}

	s := &Slot{
		reader:  reader,
		key:     key,
		def:     def,
		content: def,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loading = !s.skipFetch

	return s
}

// Key returns the slot key currently bound.
func (s *Slot) Key() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Content returns the resolved payload. It is never nil.
// Callers must treat the returned map as read-only.
func (s *Slot) Content() models.ContentPayload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// Loading reports whether a fetch for the current key is outstanding.
func (s *Slot) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the transport or query failure of the latest load, if any.
// A missing document is not an error.
func (s *Slot) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Load fetches the current key once and applies the result.
// It returns the error recorded on the slot, which is also available
// through [Slot.Err].
func (s *Slot) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.skipFetch {
		s.mu.Unlock()
		return nil
	}
	s.generation++
	gen := s.generation
	key := s.key
	s.loading = true
	s.mu.Unlock()

	payload, found, err := s.fetch(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.FromContext(ctx).Debug().
			Str("key", key).
			Uint64("generation", gen).
			Msg("discarding stale content result")
		return nil
	}

	s.loading = false
	s.err = err
	if err == nil && found && len(payload) > 0 {
		s.content = payload
	} else {
		s.content = s.def
	}

	return err
}

// SetKey rebinds the slot and reloads it when key differs from the current
// one. The default is served while the new key is loading.
func (s *Slot) SetKey(ctx context.Context, key string) error {
	s.mu.Lock()
	if key == s.key {
		s.mu.Unlock()
		return nil
	}
	s.key = key
	s.content = s.def
	s.err = nil
	s.mu.Unlock()

	return s.Load(ctx)
}

func (s *Slot) fetch(ctx context.Context, key string) (models.ContentPayload, bool, error) {
	if s.reader == nil {
		return nil, false, ErrNilReader
	}

	payload, found, err := s.reader.Get(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("key", key).
			Msg("content fetch failed, serving default")
		return nil, false, err
	}

	return payload, found, nil
}
