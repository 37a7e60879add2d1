// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/internal/utils"
)

// Storages groups the backends available to the storage wrapper. A nil field
// means the corresponding kind is unavailable in this environment.
type Storages struct {
	Local   *SQLStore
	Session *RedisStore

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens the local database (SQLite file or PostgreSQL), creating the
//     SQLite file if it does not yet exist, and runs pending migrations.
//  2. Connects to Redis for session storage when an address is configured,
//     under a freshly generated session id.
//
// A failure of either backend is logged and leaves that backend nil: the
// storage wrapper falls back to memory. Only a failed migration of a
// reachable database is returned as an error.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{}

	db, err := OpenLocal(ctx, cfg.Local, log)
	if err != nil {
		log.Warn().Err(err).Msg("local storage is unavailable")
	} else {
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.db = db
		s.Local = NewSQLStore(db, cfg.Local, log)
	}

	if cfg.Session.RedisAddr != "" {
		sessionID := utils.NewUUIDGenerator().Generate()
		session, err := NewRedisStore(ctx, cfg.Session, sessionID, log)
		if err != nil {
			log.Warn().Err(err).Msg("session storage is unavailable")
		} else {
			s.Session = session
		}
	}

	return s, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.Session != nil {
		errs = append(errs, s.Session.Close())
	}

	return errors.Join(errs...)
}
