// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storage wraps a key/value backend with JSON serialization.
//
// A [Storage] is built by [Factory] from a backend name ("localStorage",
// "sessionStorage") and the [Globals] of the hosting environment. A backend
// is used only if it exists and passes [Probe]; otherwise the wrapper falls
// back to an in-memory [NullStorage]. Reads never fail: backend errors and
// malformed values are reported as missing data.
package storage
