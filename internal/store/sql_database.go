// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fxa-settings/internal/config"
	"github.com/MKhiriev/fxa-settings/internal/logger"
	"github.com/MKhiriev/fxa-settings/migrations"
)

// Dialect names the SQL engine behind a [DB].
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema with the goose dialect of db.
func (db *DB) Migrate() error {
	dialect := "sqlite3"
	if db.dialect == DialectPostgres {
		dialect = "pgx"
	}

	return migrations.Migrate(db.DB, dialect)
}

// Dialect reports the SQL engine.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URI.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// OpenLocal connects to the local storage database: PostgreSQL for
// postgres:// URIs, SQLite otherwise.
func OpenLocal(ctx context.Context, cfg config.LocalStorage, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
