// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

import (
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/metrics"
)

// probeKey is written and removed by [Probe].
const probeKey = "__fxa_storage"

// Factory builds a [Storage] for the backend called name. "localStorage" and
// "sessionStorage" are used only if present in globals and if [Probe]
// succeeds; a failed probe is logged. Every other name, and every failed
// probe, yields in-memory storage.
func Factory(name string, globals Globals, log *logger.Logger) *Storage {
	backend, kind := globals.lookup(name)

	if kind != KindMemory {
		if err := probe(globals, name); err != nil {
			log.Warn().
				Err(err).
				Str("namespace", err.Namespace).
				Str("errno", err.Errno).
				Msg("storage backend failed probe, falling back to memory")
			metrics.StorageProbeFailuresTotal.WithLabelValues(err.Namespace, err.Errno).Inc()
			backend, kind = nil, KindMemory
		}
	}

	if kind == KindMemory {
		backend = NewNullStorage()
	}

	metrics.StorageBackendSelected.WithLabelValues(requestedLabel(name), string(kind)).Inc()
	log.Debug().Str("requested", name).Str("kind", string(kind)).Msg("storage created")

	return New(backend, kind)
}

// Probe checks that the backend called name accepts a write and a removal.
// It returns nil on success, or a *StorageError describing the failure.
// An unknown name is probed as a missing backend.
func Probe(globals Globals, name string) error {
	if err := probe(globals, name); err != nil {
		return err
	}
	return nil
}

func probe(globals Globals, name string) *StorageError {
	backend, _ := globals.lookup(name)
	if backend == nil {
		return newStorageError(name, ErrBackendMissing)
	}

	if err := backend.SetItem(probeKey, "true"); err != nil {
		return newStorageError(name, err)
	}
	if err := backend.RemoveItem(probeKey); err != nil {
		return newStorageError(name, err)
	}

	return nil
}

// TestLocalStorage probes the "localStorage" backend.
func TestLocalStorage(globals Globals) error {
	return Probe(globals, string(KindLocal))
}

// TestSessionStorage probes the "sessionStorage" backend.
func TestSessionStorage(globals Globals) error {
	return Probe(globals, string(KindSession))
}

// requestedLabel keeps the metric label set bounded.
func requestedLabel(name string) string {
	switch Kind(name) {
	case KindLocal, KindSession:
		return name
	}
	return "other"
}
