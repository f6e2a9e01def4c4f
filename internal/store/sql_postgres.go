package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresApplicationName = "go-diner"
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxIdleTime = 5 * time.Minute
)

// NewConnectPostgres opens the pgx pool for cfg.DSN and pings it. Sessions
// are tagged with application_name so they can be told apart in
// pg_stat_activity.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	connLog := log.With().Str("func", "NewConnectPostgres").Logger()

	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		connLog.Err(err).Msg("invalid postgres DSN")
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}
	connConfig.RuntimeParams["application_name"] = postgresApplicationName

	conn := stdlib.OpenDB(*connConfig)
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	if err := conn.PingContext(ctx); err != nil {
		connLog.Err(err).Str("host", connConfig.Host).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	connLog.Info().Str("host", connConfig.Host).Str("database", connConfig.Database).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            dialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresError returns the SQLSTATE code of err, or "" for non-Postgres
// errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
