// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// GetClientConfig loads the client configuration. Only environment variables
// and the configuration file are consulted: command-line arguments belong
// to the cobra commands of the client binary.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}

// ClientConfigFromFile is used by the client binary when a --config flag was
// passed explicitly; the path overrides the CONFIG variable.
func ClientConfigFromFile(path string) (*StructuredConfig, error) {
	b := newConfigBuilder().withEnv()
	if path != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	}

	cfg, err := b.withFile().build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}
