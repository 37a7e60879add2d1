// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

const testTraceID = "0190b7e2-6c4a-7d3e-9f00-5a1b2c3d4e5f"

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Env: config.EnvStage, Version: "1.2.3"},
		Server: config.Server{
			HTTPAddress:        "localhost:3030",
			RequestTimeout:     5 * time.Second,
			AllowedQueryParams: []string{"context", "uid", "email"},
		},
		Settings: config.Settings{
			AuthServerURL:     "https://api-accounts.stage.mozaws.net",
			ContentServerURL:  "https://accounts.stage.mozaws.net",
			GQLServerURL:      "https://graphql.accounts.stage.mozaws.net",
			OAuthServerURL:    "https://oauth.stage.mozaws.net",
			ProfileServerURL:  "https://profile.stage.mozaws.net",
			OAuthClientID:     "ea3ca969f8c6bb0d",
			ScopedKeysEnabled: true,
			SentryEnv:         "stage",
			SentrySampleRate:  0.5,
		},
	}
}

// newTestHandler builds a Handler with a nop logger and a fixed id generator.
func newTestHandler(t *testing.T, mutate ...func(*config.StructuredConfig)) *Handler {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	h, err := NewHandler(cfg, models.AppBuildInfo{Commit: "abc123"}, logger.Nop())
	require.NoError(t, err)
	h.ids = fixedIDs(testTraceID)
	return h
}
