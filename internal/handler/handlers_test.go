// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/models"
)

func TestNewHandlers(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:    config.App{Env: config.EnvDevelopment, Version: "1.0.0"},
		Server: config.Server{HTTPAddress: "localhost:3030"},
	}

	handlers, err := NewHandlers(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoTransport(t *testing.T) {
	cfg := &config.StructuredConfig{}

	_, err := NewHandlers(cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
