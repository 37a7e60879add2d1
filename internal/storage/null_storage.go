// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

import "sync"

// NullStorage is the in-memory [Backend] used when no real backend is
// available. Its contents live as long as the value.
type NullStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewNullStorage() *NullStorage {
	return &NullStorage{items: make(map[string]string)}
}

func (s *NullStorage) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

func (s *NullStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

func (s *NullStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

func (s *NullStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.items)
	return nil
}

// Len returns the number of stored keys.
func (s *NullStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
