// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the settings client.
type Client interface {
	// Bootstrap prepares a session for startURL, the address the settings
	// application was opened at. An empty startURL means the configured
	// page URL.
	Bootstrap(ctx context.Context, startURL string) (*Session, error)

	// Close releases the storage connections.
	Close() error
}
