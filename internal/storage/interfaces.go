// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend is the raw string key/value store behind a [Storage].
type Backend interface {
	// GetItem returns the raw value of key, or ok=false when absent.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Clear() error
}
