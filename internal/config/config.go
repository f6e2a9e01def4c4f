// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/http"
	"time"
)

// Environments recognised by [App.Environment]. The environment decides the
// flags of the session cookie.
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields left
// empty by every configuration source.
const (
	DefaultHTTPAddress       = ":7000"
	DefaultTokenIssuer       = "go-diner"
	DefaultTokenDuration     = time.Hour
	DefaultRequestTimeout    = 30 * time.Second
	DefaultRateLimit         = 20
	DefaultRateBurst         = 40
	DefaultOrderSequenceKey  = "go-diner:order-sequence"
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultApplicationLogLvl = "debug"
)

// StructuredConfig is the top-level configuration container for the
// go-diner server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, cookie
	// environment and log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional Redis instance backing the order sequencer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and rate-limit settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// tokens, cookies and logging.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token (and its cookie)
	// remains valid after issuance (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Environment is either "production" or "development". Production
	// issues Secure, SameSite=None cookies; development issues non-secure,
	// SameSite=Strict cookies.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// LogLevel is the global zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsProduction reports whether the application runs in production.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// CookieSecure returns the Secure flag of the session cookie.
func (a App) CookieSecure() bool {
	return a.IsProduction()
}

// CookieSameSite returns the SameSite mode of the session cookie.
func (a App) CookieSameSite() http.SameSite {
	if a.IsProduction() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the optional Redis connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// PostgreSQL DSNs ("postgres://...") use the pgx driver; DSNs prefixed
	// with "sqlite://" open a local SQLite file for development.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for Redis. When Address is empty the
// order sequencer is kept in process memory.
type Redis struct {
	// Address is the "host:port" of the Redis server.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional Redis password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// SequenceKey is the key incremented for every placed order.
	// Env: STORAGE_REDIS_SEQUENCE_KEY
	SequenceKey string `env:"SEQUENCE_KEY"`
}

// Server holds network, timeout and throttling settings for the inbound
// HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:7000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels its context.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// RateLimit is the number of requests per second allowed per client
	// address. Zero selects DefaultRateLimit; a negative value disables
	// rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the per-client rate limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// RateLimitEnabled reports whether inbound requests are throttled.
func (s Server) RateLimitEnabled() bool {
	return s.RateLimit > 0
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. .env file in the working directory (exported into the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to every field left empty.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
