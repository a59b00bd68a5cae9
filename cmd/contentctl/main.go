// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/venture-portal/internal/admin"
	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/store"
)

func main() {
	log := logger.NewLogger("contentctl")

	open := func(ctx context.Context, configPath string) (store.ContentRepository, func() error, error) {
		cfg, err := config.GetStorageConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		storages, err := store.NewStorages(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return storages.ContentRepository, storages.Close, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := admin.NewRootCommand(open, log).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("contentctl failed")
		stop()
		os.Exit(1)
	}
}
