// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fxa-settings/internal/urlparams"
)

func newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Parse, update and clean settings URLs",
	}

	cmd.AddCommand(
		newParamsParseCmd(),
		newParamsUpdateCmd(),
		newParamsCleanCmd(),
		newParamsOriginCmd(),
	)
	return cmd
}

func newParamsParseCmd() *cobra.Command {
	var hash bool
	var allowed []string

	cmd := &cobra.Command{
		Use:   "parse <url-or-search-string>",
		Short: "Print the search (or hash) parameters of a URL, one key=value per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params *urlparams.Params
			if hash {
				params = urlparams.HashParams(args[0], allowed...)
			} else {
				params = urlparams.SearchParams(args[0], allowed...)
			}

			for _, key := range params.Keys() {
				value, _ := params.Get(key)
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&hash, "hash", false, "parse the fragment instead of the search string")
	cmd.Flags().StringSliceVar(&allowed, "allow", nil, "keep only these keys")
	return cmd
}

func newParamsUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <uri> key=value...",
		Short: "Merge parameters into the search string of a URI",
		Long: `Merge key=value pairs into the search string of a URI. New values win.
A pair with an empty value removes the key. The fragment is dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := urlparams.NewParams()
			for _, pair := range args[1:] {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid parameter %q, want key=value", pair)
				}
				updates.Set(key, value)
			}

			fmt.Fprintln(cmd.OutOrStdout(), urlparams.UpdateSearchString(args[0], updates))
			return nil
		},
	}
}

func newParamsCleanCmd() *cobra.Command {
	var allowed []string

	cmd := &cobra.Command{
		Use:   "clean <uri>",
		Short: "Drop search parameters that are not allowed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), urlparams.CleanSearchString(args[0], allowed...))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&allowed, "allow", nil, "allowed keys (comma separated or repeated)")
	return cmd
}

func newParamsOriginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "origin <url>",
		Short: "Print the origin of a URL, or null",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, ok := urlparams.GetOrigin(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "null")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), origin)
			return nil
		},
	}
}
