// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// Codes reported for failures that do not come from a database server.
const (
	ErrnoTimeout = "ETIMEDOUT"
	ErrnoRefused = "ECONNREFUSED"
)

var sqliteCodeNames = map[sqlite3.ErrNo]string{
	sqlite3.ErrError:      "SQLITE_ERROR",
	sqlite3.ErrInternal:   "SQLITE_INTERNAL",
	sqlite3.ErrPerm:       "SQLITE_PERM",
	sqlite3.ErrAbort:      "SQLITE_ABORT",
	sqlite3.ErrBusy:       "SQLITE_BUSY",
	sqlite3.ErrLocked:     "SQLITE_LOCKED",
	sqlite3.ErrNomem:      "SQLITE_NOMEM",
	sqlite3.ErrReadonly:   "SQLITE_READONLY",
	sqlite3.ErrInterrupt:  "SQLITE_INTERRUPT",
	sqlite3.ErrIoErr:      "SQLITE_IOERR",
	sqlite3.ErrCorrupt:    "SQLITE_CORRUPT",
	sqlite3.ErrNotFound:   "SQLITE_NOTFOUND",
	sqlite3.ErrFull:       "SQLITE_FULL",
	sqlite3.ErrCantOpen:   "SQLITE_CANTOPEN",
	sqlite3.ErrProtocol:   "SQLITE_PROTOCOL",
	sqlite3.ErrEmpty:      "SQLITE_EMPTY",
	sqlite3.ErrSchema:     "SQLITE_SCHEMA",
	sqlite3.ErrTooBig:     "SQLITE_TOOBIG",
	sqlite3.ErrConstraint: "SQLITE_CONSTRAINT",
	sqlite3.ErrMismatch:   "SQLITE_MISMATCH",
	sqlite3.ErrMisuse:     "SQLITE_MISUSE",
	sqlite3.ErrNoLFS:      "SQLITE_NOLFS",
	sqlite3.ErrAuth:       "SQLITE_AUTH",
	sqlite3.ErrFormat:     "SQLITE_FORMAT",
	sqlite3.ErrRange:      "SQLITE_RANGE",
	sqlite3.ErrNotADB:     "SQLITE_NOTADB",
}

// Errno extracts an identifying code from a driver error:
//   - SQLite: the primary result code name ("SQLITE_READONLY");
//   - PostgreSQL: the SQLSTATE ("25006");
//   - Redis: the error prefix ("READONLY", "OOM", "NOPERM");
//   - deadlines and refused connections: ETIMEDOUT / ECONNREFUSED.
//
// Errors already carrying an Errno method are asked directly. Unknown
// errors yield "".
func Errno(err error) string {
	if err == nil {
		return ""
	}

	var coded interface{ Errno() string }
	if errors.As(err, &coded) {
		return coded.Errno()
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if name, ok := sqliteCodeNames[sqliteErr.Code]; ok {
			return name
		}
		return fmt.Sprintf("SQLITE_%d", int(sqliteErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrnoTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return ErrnoRefused
	}

	var redisErr redis.Error
	if !errors.Is(err, redis.Nil) && errors.As(err, &redisErr) {
		prefix, _, _ := strings.Cut(redisErr.Error(), " ")
		return prefix
	}

	return ""
}
