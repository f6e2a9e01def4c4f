package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/migrations"
)

const sqliteScheme = "sqlite://"

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// DB is the shared connection pool of the service. It is opened once at
// startup and closed on shutdown.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.DSN: "sqlite://path" opens a
// local SQLite file, anything else is handed to the pgx driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, sqliteScheme):
		return NewConnectSQLite(ctx, strings.TrimPrefix(cfg.DSN, sqliteScheme), log)
	case cfg.DSN != "":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	gooseDialect := migrations.DialectPostgres
	if db.dialect == dialectSQLite {
		gooseDialect = migrations.DialectSQLite
	}

	return migrations.Migrate(db.DB, gooseDialect)
}

// Close releases the pool.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("database connection closed")
	return nil
}

// builder returns a squirrel statement builder using the placeholder style
// of the connected driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == dialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// classify annotates err for logging: "retryable" or "non-retryable".
func (db *DB) classify(err error) string {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return "retryable"
	}
	return "non-retryable"
}
