// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/models"
)

// cli carries state shared by the subcommands. Configuration and logger are
// loaded lazily so that the pure URL commands work without any setup.
type cli struct {
	configPath string

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func (c *cli) load(cmd *cobra.Command) error {
	if c.cfg != nil {
		return nil
	}

	cfg, err := config.ClientConfigFromFile(c.configPath)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, err := logger.New("settings-client", logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	c.cfg = cfg
	c.logger = log
	return nil
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "fxa-settings",
		Short: "Firefox Accounts settings client",
		Long: `Command-line client of the Firefox Accounts settings application.

Available subcommands:
  bootstrap - Read the settings page and prepare an authenticated session
  params    - Parse, update and clean settings URLs
  storage   - Inspect and edit web storage
  config    - Show the effective client configuration`,
		Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "JSON or YAML config file (overrides CONFIG)")

	root.AddCommand(
		newBootstrapCmd(c),
		newParamsCmd(),
		newStorageCmd(c),
		newConfigCmd(c),
	)

	return root
}
