// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the portal API address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SessionPollInterval defines how often the session poller runs.
	SessionPollInterval time.Duration
}

// ClientConfig is the configuration view used by the terminal client and
// the content CLI.
type ClientConfig struct {
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		buildRaw()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			SessionPollInterval: cfg.Workers.SessionPollInterval,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.SessionPollInterval == 0 {
		clientCfg.Workers.SessionPollInterval = defaultSessionPollInterval
	}

	return clientCfg
}
