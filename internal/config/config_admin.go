// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// GetStorageConfig loads only the storage settings from environment variables
// and the optional JSON file. It is used by command-line tools that parse
// their own flags.
func GetStorageConfig(jsonFilePath string) (Storage, error) {
	b := newConfigBuilder().withEnv()
	if jsonFilePath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonFilePath})
	}

	cfg, err := b.withJSON().buildRaw()
	if err != nil {
		return Storage{}, fmt.Errorf("error get storage config: %w", err)
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}

	return cfg.Storage, nil
}
