// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/utils"
	"github.com/MKhiriev/fxa-settings/models"
)

// Handler serves the settings pages and the operational endpoints.
type Handler struct {
	server config.Server
	build  models.AppBuildInfo

	// page is the rendered application shell. The client configuration
	// does not change while the process runs, so it is rendered once.
	page []byte

	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewHandler renders the settings page for cfg and returns a Handler ready
// to be mounted with [Handler.Init].
func NewHandler(cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Handler, error) {
	encoded, err := EncodeClientConfig(ClientConfig(cfg.App, cfg.Settings))
	if err != nil {
		return nil, err
	}

	page, err := renderPage(encoded)
	if err != nil {
		return nil, err
	}

	if build.Version == "" {
		build.Version = cfg.App.Version
	}
	if build.Source == "" {
		build.Source = sourceRepo
	}

	logger.Info().
		Int("page_bytes", len(page)).
		Str("env", cfg.App.Env).
		Msg("http handler created")

	return &Handler{
		server: cfg.Server,
		build:  build,
		page:   page,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}
