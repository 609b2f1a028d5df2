package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a unique-constraint violation
// raised by one of the supported storage engines.
//
// Classification relies exclusively on the engine's structured error code:
//   - PostgreSQL: pgconn.PgError with code 23505 (pgerrcode.UniqueViolation).
//   - SQLite: sqlite3.Error with extended code SQLITE_CONSTRAINT_UNIQUE.
//
// Any other error, including other constraint classes, is not a unique
// violation and must surface as a generic storage failure.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
