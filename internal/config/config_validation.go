// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/fxa-settings/internal/urlparams"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateCommon(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit < 0 || (cfg.Server.RateLimit > 0 && cfg.Server.RateLimitWindow <= 0) {
		return fmt.Errorf("%w: rate limit requires a positive window", ErrInvalidServerConfigs)
	}

	urls := map[string]string{
		"auth":    cfg.Settings.AuthServerURL,
		"content": cfg.Settings.ContentServerURL,
		"gql":     cfg.Settings.GQLServerURL,
		"oauth":   cfg.Settings.OAuthServerURL,
		"profile": cfg.Settings.ProfileServerURL,
	}
	for name, u := range urls {
		if origin, ok := urlparams.GetOrigin(u); !ok || origin == "" {
			return fmt.Errorf("%w: %s server url %q", ErrInvalidSettingsConfigs, name, u)
		}
	}
	if cfg.Settings.SentrySampleRate < 0 || cfg.Settings.SentrySampleRate > 1 {
		return fmt.Errorf("%w: sentry sample rate out of range", ErrInvalidSettingsConfigs)
	}

	return nil
}

// validateClient checks the settings the client binary needs.
func (cfg *StructuredConfig) validateClient() error {
	if err := cfg.validateCommon(); err != nil {
		return err
	}

	if origin, ok := urlparams.GetOrigin(cfg.Adapter.PageURL); !ok || origin == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateCommon() error {
	switch cfg.App.Env {
	case EnvDevelopment, EnvTest, EnvStage, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown env %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if cfg.Storage.Local.DSN == "" || cfg.Storage.Local.Namespace == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Session.RedisAddr != "" && cfg.Storage.Session.TTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidStorageConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLoggingConfigs, err)
	}
	switch cfg.Logging.Format {
	case "heka", "pretty":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLoggingConfigs, cfg.Logging.Format)
	}

	return nil
}
