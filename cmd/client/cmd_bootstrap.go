// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fxa-settings/internal/client"
)

// bootstrapReport is printed by the bootstrap command.
type bootstrapReport struct {
	Env         string            `json:"env"`
	GQLURL      string            `json:"gqlUrl"`
	UID         string            `json:"uid"`
	Storage     string            `json:"storage"`
	QueryParams map[string]string `json:"queryParams"`
	Result      json.RawMessage   `json:"result,omitempty"`
}

func newBootstrapCmd(c *cli) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "bootstrap [start-url]",
		Short: "Read the settings page and prepare an authenticated GraphQL session",
		Long: `Bootstrap the settings client the way the web application starts:

1. Open web storage (localStorage, falling back to memory)
2. Fetch the settings page and merge its embedded configuration
3. Require servers.gql.url and the current account's session token
4. Optionally send a GraphQL query with the session token

The start URL defaults to ADAPTER_PAGE_URL. Its search parameters are
reported as the session's query parameters.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.load(cmd); err != nil {
				return err
			}

			ctx := cmdContext(cmd)
			app, err := client.NewApp(ctx, c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer app.Close()

			var startURL string
			if len(args) == 1 {
				startURL = args[0]
			}

			session, err := app.Bootstrap(ctx, startURL)
			if err != nil {
				return err
			}

			report := bootstrapReport{
				Env:         session.Config.Env,
				GQLURL:      session.Config.Servers.GQL.URL,
				UID:         session.Account.UID,
				Storage:     string(app.Storage().Kind()),
				QueryParams: session.QueryParams.Map(),
			}

			if query != "" {
				var result json.RawMessage
				if err = session.GraphQL.Query(ctx, query, nil, &result); err != nil {
					return err
				}
				report.Result = result
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "GraphQL query to send after bootstrapping")

	return cmd
}
