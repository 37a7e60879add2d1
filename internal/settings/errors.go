// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrMetaMissing is returned by [Store.ReadConfigMeta] when the page
	// carries no configuration meta element at all.
	ErrMetaMissing = errors.New(`<meta name="fxa-config"> is missing`)

	// ErrConfigEmpty is returned by [Store.Decode] in hardened mode when the
	// payload is empty or absent.
	ErrConfigEmpty = errors.New("configuration is empty")
)

// InvalidConfigError is returned by [Store.Decode] in hardened mode when the
// payload cannot be URI-decoded or parsed as a JSON object.
type InvalidConfigError struct {
	// Value is the payload as received.
	Value string
	// Err is the decoding or parsing failure.
	Err error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %v", e.Value, e.Err)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}
