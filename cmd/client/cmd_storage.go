// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/fxa-settings/internal/client"
	"github.com/MKhiriev/fxa-settings/internal/storage"
	"github.com/MKhiriev/fxa-settings/internal/store"
)

var errKeyNotFound = errors.New("key not found")

// storageCmdState is shared by the storage subcommands.
type storageCmdState struct {
	kind     string
	storages *store.Storages
	storage  *storage.Storage
}

func newStorageCmd(c *cli) *cobra.Command {
	st := &storageCmdState{}

	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect and edit web storage",
		Long: `Inspect and edit web storage through the same wrapper the client uses.

Values are JSON. An unavailable backend falls back to memory, in which case
writes do not outlive the command.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.load(cmd); err != nil {
				return err
			}

			storages, err := store.NewStorages(cmdContext(cmd), c.cfg.Storage, c.logger)
			if err != nil {
				return err
			}

			st.storages = storages
			st.storage = storage.Factory(st.kind, client.StorageGlobals(storages), c.logger)
			if st.storage.Kind() != storage.Kind(st.kind) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is unavailable, using %s\n", st.kind, st.storage.Kind())
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st.storages == nil {
				return nil
			}
			return st.storages.Close()
		},
	}
	cmd.PersistentFlags().StringVar(&st.kind, "kind", string(storage.KindLocal), "storage kind: localStorage or sessionStorage")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print the JSON value of a key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, ok := st.storage.Get(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", errKeyNotFound, args[0])
				}

				out, err := json.Marshal(value)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <json>",
			Short: "Store a JSON value; a value that is not JSON is stored as a string",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var value any
				if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
					value = args[1]
				}
				return st.storage.Set(args[0], value)
			},
		},
		&cobra.Command{
			Use:   "rm <key>",
			Short: "Remove a key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return st.storage.Remove(args[0])
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return st.storage.Clear()
			},
		},
	)

	return cmd
}

// cmdContext returns the command's context, or Background when the command
// runs outside Execute (tests calling RunE directly).
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
