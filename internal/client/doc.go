// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bootstrap of the settings client.
//
// It opens web storage, reads the configuration embedded in the settings
// page, resolves the current account's session token and prepares an
// authenticated GraphQL adapter, in that order. Any failing step aborts the
// bootstrap with an error.
package client
