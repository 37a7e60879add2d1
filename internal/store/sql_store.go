// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
)

// Storage operation names used in errors and logs.
const (
	opGetItem    = "getItem"
	opSetItem    = "setItem"
	opRemoveItem = "removeItem"
	opClear      = "clear"
)

const (
	defaultOpTimeout = 3 * time.Second
	sqlRetries       = 2
	sqlRetryBackoff  = 20 * time.Millisecond
)

// SQLStore is the persistent key/value backend of "localStorage". Rows are
// scoped by namespace, so several applications may share one table.
//
// Every call runs under its own timeout: the backend contract carries no
// context. Transient failures (see [ErrorClassificator]) are retried.
type SQLStore struct {
	db        *DB
	namespace string
	timeout   time.Duration
	logger    *logger.Logger
}

// NewSQLStore constructs a [SQLStore] over an open, migrated database.
func NewSQLStore(db *DB, cfg config.LocalStorage, log *logger.Logger) *SQLStore {
	log.Debug().Str("namespace", cfg.Namespace).Str("dialect", string(db.dialect)).Msg("creating sql storage")

	timeout := cfg.OpTimeout
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}

	return &SQLStore{
		db:        db,
		namespace: cfg.Namespace,
		timeout:   timeout,
		logger:    log,
	}
}

// GetItem returns the raw value stored under key. A missing row is reported
// as ("", false, nil).
func (s *SQLStore) GetItem(key string) (string, bool, error) {
	query, args, err := buildGetItemQuery(s.db.builder(), s.namespace, key)
	if err != nil {
		return "", false, s.fail(opGetItem, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.fail(opGetItem, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return value, true, nil
}

// SetItem inserts or replaces the value stored under key.
func (s *SQLStore) SetItem(key, value string) error {
	query, args, err := buildSetItemQuery(s.db.builder(), s.namespace, key, value)
	if err != nil {
		return s.fail(opSetItem, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	return s.exec(opSetItem, query, args)
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *SQLStore) RemoveItem(key string) error {
	query, args, err := buildRemoveItemQuery(s.db.builder(), s.namespace, key)
	if err != nil {
		return s.fail(opRemoveItem, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	return s.exec(opRemoveItem, query, args)
}

// Clear deletes every key of the namespace.
func (s *SQLStore) Clear() error {
	query, args, err := buildClearQuery(s.db.builder(), s.namespace)
	if err != nil {
		return s.fail(opClear, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	return s.exec(opClear, query, args)
}

func (s *SQLStore) exec(op, query string, args []any) error {
	var err error
	for attempt := 0; attempt <= sqlRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * sqlRetryBackoff)
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		_, err = s.db.ExecContext(ctx, query, args...)
		cancel()
		if err == nil {
			return nil
		}

		if s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			break
		}
		s.logger.Warn().Err(err).Str("op", op).Int("attempt", attempt+1).Msg("transient storage error, retrying")
	}

	return s.fail(op, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
}

func (s *SQLStore) fail(op string, err error) error {
	bErr := newBackendError(string(s.db.dialect), op, err)
	s.logger.Err(err).
		Str("func", "*SQLStore."+op).
		Str("errno", bErr.Code).
		Msg("storage operation failed")
	return bErr
}
