// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// applyDefaults fills zero-valued settings that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ConfirmTokenDuration == 0 {
		cfg.App.ConfirmTokenDuration = defaultConfirmTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.SubmitRateLimit == 0 {
		cfg.Server.SubmitRateLimit = defaultSubmitRateLimit
	}
	if cfg.Server.SubmitBurst == 0 {
		cfg.Server.SubmitBurst = defaultSubmitBurst
	}
}

// validate checks that the merged server configuration can be used to start
// the portal.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.SubmitRateLimit < 0 || cfg.Server.SubmitBurst < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
