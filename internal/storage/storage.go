// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the backend a [Storage] resolved to.
type Kind string

const (
	KindLocal   Kind = "localStorage"
	KindSession Kind = "sessionStorage"
	KindMemory  Kind = "memory"
)

// Globals describes the hosting environment. A nil field means the backend
// does not exist there.
type Globals struct {
	LocalStorage   Backend
	SessionStorage Backend
}

func (g Globals) lookup(name string) (Backend, Kind) {
	switch Kind(name) {
	case KindLocal:
		return g.LocalStorage, KindLocal
	case KindSession:
		return g.SessionStorage, KindSession
	}

	return nil, KindMemory
}

// Storage stores JSON-encoded values in a [Backend].
type Storage struct {
	backend Backend
	kind    Kind
}

// New wraps backend without probing it.
func New(backend Backend, kind Kind) *Storage {
	return &Storage{backend: backend, kind: kind}
}

// Kind reports the backend the storage resolved to.
func (s *Storage) Kind() Kind {
	return s.kind
}

// Get returns the decoded value of key. A missing key, a backend failure and
// a value that is not valid JSON all yield (nil, false). A stored JSON null
// yields (nil, true).
func (s *Storage) Get(key string) (any, bool) {
	raw, ok := s.raw(key)
	if !ok {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}

	return v, true
}

// GetInto decodes the value of key into dst and reports success. dst is
// left untouched when the key is missing or its value is not valid JSON.
func (s *Storage) GetInto(key string, dst any) bool {
	raw, ok := s.raw(key)
	if !ok {
		return false
	}

	return json.Unmarshal([]byte(raw), dst) == nil
}

func (s *Storage) raw(key string) (string, bool) {
	raw, ok, err := s.backend.GetItem(key)
	if err != nil || !ok {
		return "", false
	}

	return raw, true
}

// Set stores value under key as JSON.
func (s *Storage) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding %q: %w", key, err)
	}

	return s.backend.SetItem(key, string(data))
}

// Remove deletes key.
func (s *Storage) Remove(key string) error {
	return s.backend.RemoveItem(key)
}

// Clear deletes every key of the backend.
func (s *Storage) Clear() error {
	return s.backend.Clear()
}
