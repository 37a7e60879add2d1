// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the settings page server.
//
// It serves the single-page application shell under /settings with the
// client configuration embedded in a <meta name="fxa-config"> element, plus
// the operational endpoints /__version__, /__heartbeat__, /__lbheartbeat__
// and /metrics. Request tracing, access logging with metrics, panic
// recovery, rate limiting, response compression and the canonical query
// redirect are handled by middleware in this package.
package http
