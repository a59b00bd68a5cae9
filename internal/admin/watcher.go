// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package admin

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch re-seeds a slot every time its file in dir is created or written.
// Removing a file keeps the stored slot. Watch blocks until ctx is done.
func (s *Seeder) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	s.logger.Info().Str("dir", dir).Msg("watching content directory")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, changed := changedContentFile(event)
			if !changed {
				continue
			}
			if _, err = s.SeedFile(ctx, path); err != nil {
				s.logger.Err(err).Str("file", path).Msg("error re-seeding content slot")
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Err(werr).Str("dir", dir).Msg("content watcher error")
		}
	}
}

// changedContentFile reports the content file an event asks to re-seed.
func changedContentFile(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if !IsContentFile(event.Name) {
		return "", false
	}
	return event.Name, true
}
