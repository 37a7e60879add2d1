// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// RunServer starts serving and blocks until SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Run starts serving and blocks until ctx is done or the listener
	// fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
