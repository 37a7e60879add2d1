// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [StructuredConfig.validateClient] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown runtime environment.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, empty listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSettingsConfigs indicates that a server URL embedded in the
	// page is not an absolute http(s) origin.
	ErrInvalidSettingsConfigs = errors.New("invalid settings configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty local DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log level or format.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing page URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
