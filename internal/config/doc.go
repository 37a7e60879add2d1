// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the settings server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, with defaults from `envDefault` tags
//  2. Command-line flags (server only)
//  3. JSON or YAML config file
//
// The main entry points are [GetServerConfig] for the page server and
// [GetClientConfig] for the client binary.
package config
