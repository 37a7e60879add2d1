// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Low-level database operation errors. These are wrapped by [BackendError]
// when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a storage row fails.
	ErrScanningRow = errors.New("failed to scan storage row")
)

// Connection errors returned by the constructors.
var (
	// ErrUnsupportedDSN is returned when a local storage DSN names neither
	// a SQLite file nor a postgres:// URI.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")

	// ErrSessionStorageDisabled is returned by [NewRedisStore] when no Redis
	// address is configured.
	ErrSessionStorageDisabled = errors.New("session storage is not configured")
)

// BackendError is returned by every backend operation that fails. Code holds
// the identifying error code of the underlying driver, as reported by
// [Errno].
type BackendError struct {
	// Backend is "sqlite", "postgres" or "redis".
	Backend string
	// Op is the storage operation: getItem, setItem, removeItem or clear.
	Op   string
	Code string
	Err  error
}

func (e *BackendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Backend, e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Errno returns the identifying code of the failure.
func (e *BackendError) Errno() string {
	return e.Code
}

func newBackendError(backend, op string, err error) *BackendError {
	return &BackendError{
		Backend: backend,
		Op:      op,
		Code:    Errno(err),
		Err:     err,
	}
}
