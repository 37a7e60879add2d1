// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

import (
	"errors"
	"fmt"
)

// ErrBackendMissing is wrapped by the [StorageError] of a probe whose backend
// does not exist in the hosting environment.
var ErrBackendMissing = errors.New("backend is not available")

// ErrnoMissing is the Errno reported with [ErrBackendMissing].
const ErrnoMissing = "ENOENT"

// StorageError is the normalized error of a failed probe.
type StorageError struct {
	// Context is always "storage".
	Context string
	// Namespace is the probed backend name ("localStorage", "sessionStorage").
	Namespace string
	// Errno is the identifying code of the backend failure, copied from the
	// backend error's Errno method. Empty when the backend does not report one.
	Errno string
	Err   error
}

func newStorageError(namespace string, err error) *StorageError {
	sErr := &StorageError{
		Context:   "storage",
		Namespace: namespace,
		Err:       err,
	}

	var coded interface{ Errno() string }
	switch {
	case errors.Is(err, ErrBackendMissing):
		sErr.Errno = ErrnoMissing
	case errors.As(err, &coded):
		sErr.Errno = coded.Errno()
	}

	return sErr
}

func (e *StorageError) Error() string {
	if e.Errno != "" {
		return fmt.Sprintf("%s: %s unavailable (%s): %v", e.Context, e.Namespace, e.Errno, e.Err)
	}
	return fmt.Sprintf("%s: %s unavailable: %v", e.Context, e.Namespace, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
