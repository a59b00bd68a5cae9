// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/venture-portal/internal/adapter"
	"github.com/MKhiriev/venture-portal/internal/client"
	"github.com/MKhiriev/venture-portal/internal/config"
	"github.com/MKhiriev/venture-portal/internal/logger"
	"github.com/MKhiriev/venture-portal/internal/session"
	"github.com/MKhiriev/venture-portal/internal/tui"
	"github.com/MKhiriev/venture-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	log := logger.NewClientLogger("portal-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	portal, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	sessions := session.NewManager(portal, log)

	ui, err := tui.New(portal, sessions, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, sessions, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
