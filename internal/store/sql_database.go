package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-micro-blog/internal/config"
	"github.com/MKhiriev/go-micro-blog/internal/logger"

	// database/sql driver registrations
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sql.DB connection pool together with a squirrel statement
// builder configured for the active driver's placeholder format ($1 for
// PostgreSQL, ? for SQLite).
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	driver  string
	logger  *logger.Logger
}

// NewConnect opens a database connection pool for the configured driver,
// verifies it with a ping, and returns a ready-to-use *DB.
//
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3" (embedded file
// database). Any other driver name fails config validation before reaching
// this point.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:      conn,
		builder: newStatementBuilder(cfg.Driver),
		driver:  cfg.Driver,
		logger:  log,
	}

	return db, nil
}

// Driver returns the database/sql driver name this pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

func newStatementBuilder(driver string) sq.StatementBuilderType {
	if driver == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
