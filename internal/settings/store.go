// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/utils"
)

// State tells whether the live configuration still equals the baseline.
type State int

const (
	// StateDefault is the state after construction and after [Store.Reset].
	StateDefault State = iota
	// StateOverridden is the state after any [Store.Update] or
	// [Store.ReadConfigMeta].
	StateOverridden
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateOverridden:
		return "overridden"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store holds the baseline and the live configuration.
type Store struct {
	mu sync.RWMutex

	defaults map[string]any
	current  map[string]any
	state    State

	hardened bool
	logger   *logger.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithHardened makes empty or malformed payloads fatal in [Store.Decode].
func WithHardened(hardened bool) Option {
	return func(s *Store) {
		s.hardened = hardened
	}
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store whose baseline is a deep copy of defaults.
func New(defaults map[string]any, opts ...Option) *Store {
	s := &Store{
		defaults: utils.DeepCopyMap(defaults),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.current = utils.DeepCopyMap(s.defaults)
	return s
}

// Hardened reports whether the store rejects empty or malformed payloads.
func (s *Store) Hardened() bool {
	return s.hardened
}

// GetDefault returns a deep copy of the baseline configuration.
func (s *Store) GetDefault() map[string]any {
	return utils.DeepCopyMap(s.defaults)
}

// Current returns a deep copy of the live configuration.
func (s *Store) Current() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return utils.DeepCopyMap(s.current)
}

// State returns the current state of the store.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Lookup walks path through nested objects of the live configuration.
// The returned value is a copy.
func (s *Store) Lookup(path ...string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var node any = s.current
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[key]; !ok {
			return nil, false
		}
	}

	return utils.DeepCopy(node), true
}

// String returns the string stored at path, or "" when it is absent or not
// a string.
func (s *Store) String(path ...string) string {
	v, _ := s.Lookup(path...)
	str, _ := v.(string)
	return str
}

// Unmarshal decodes the live configuration into dst, typically a
// *[ClientConfig].
func (s *Store) Unmarshal(dst any) error {
	s.mu.RLock()
	data, err := json.Marshal(s.current)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("error decoding config: %w", err)
	}
	return nil
}

// Update deep-merges partials into the live configuration, left to right.
// See [utils.DeepMerge] for the merge rule.
func (s *Store) Update(partials ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	utils.DeepMerge(s.current, partials...)
	s.state = StateOverridden
}

// Reset replaces the live configuration with a fresh copy of the baseline.
// Keys added since construction are removed.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = utils.DeepCopyMap(s.defaults)
	s.state = StateDefault
}
