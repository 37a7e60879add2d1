// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the settings page server.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown bounded by Server.ShutdownTimeout.
package server
