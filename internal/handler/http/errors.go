// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEncodingClientConfig is returned by NewHandler when the client
	// configuration cannot be serialized for embedding.
	ErrEncodingClientConfig = errors.New("error encoding client config")

	// ErrRenderingPage is returned by NewHandler when the page template
	// fails to execute.
	ErrRenderingPage = errors.New("error rendering settings page")
)
