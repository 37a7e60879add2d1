// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *StructuredConfig {
	t.Helper()
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.validate())
	assert.NoError(t, cfg.validateClient())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "unknown env",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Env = "qa" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty listen address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "rate limit without window",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.RateLimit = 5
				cfg.Server.RateLimitWindow = 0
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "scheme-less gql url",
			mutate:  func(cfg *StructuredConfig) { cfg.Settings.GQLServerURL = "localhost:8290" },
			wantErr: ErrInvalidSettingsConfigs,
		},
		{
			name:    "empty auth url",
			mutate:  func(cfg *StructuredConfig) { cfg.Settings.AuthServerURL = "" },
			wantErr: ErrInvalidSettingsConfigs,
		},
		{
			name:    "sample rate out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.Settings.SentrySampleRate = 1.5 },
			wantErr: ErrInvalidSettingsConfigs,
		},
		{
			name:    "empty local dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Local.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "redis without ttl",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Session.RedisAddr = "localhost:6379"
				cfg.Storage.Session.TTL = 0
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "bad log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Logging.Level = "loud" },
			wantErr: ErrInvalidLoggingConfigs,
		},
		{
			name:    "bad log format",
			mutate:  func(cfg *StructuredConfig) { cfg.Logging.Format = "xml" },
			wantErr: ErrInvalidLoggingConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
	}{
		{name: "empty page url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.PageURL = "" }},
		{name: "relative page url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.PageURL = "/settings" }},
		{name: "zero timeout", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validateClient(), ErrInvalidAdapterConfigs)
		})
	}
}

func TestValidateClient_IgnoresServerSettings(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.HTTPAddress = ""
	cfg.Settings.GQLServerURL = "nope"

	assert.NoError(t, cfg.validateClient())
}

func TestApp_Hardened(t *testing.T) {
	assert.False(t, App{Env: EnvDevelopment}.Hardened())
	assert.True(t, App{Env: EnvTest}.Hardened())
	assert.True(t, App{Env: EnvProduction}.Hardened())
}

func TestClientConfigFromFile(t *testing.T) {
	clearEnvVars(t)
	path := writeTempConfig(t, "client.json", `{
		"app": {"env": "development"},
		"adapter": {"page_url": "http://127.0.0.1:3030/settings", "request_timeout": "2s"}
	}`)

	cfg, err := ClientConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:3030/settings", cfg.Adapter.PageURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.App.Hardened())
}
