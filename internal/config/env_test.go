package config

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_ENV",
	"APP_LOG_LEVEL",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_REDIS_ADDRESS",
	"STORAGE_REDIS_PASSWORD",
	"STORAGE_REDIS_DB",
	"STORAGE_REDIS_SEQUENCE_KEY",
	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
	"SERVER_SHUTDOWN_TIMEOUT",
	"SERVER_RATE_LIMIT",
	"SERVER_RATE_BURST",
	"PORT",
}

// clearEnvVars unsets every configuration variable for the duration of the
// test and restores the previous values afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func sameSiteName(a App) string {
	switch a.CookieSameSite() {
	case http.SameSiteNoneMode:
		return "None"
	case http.SameSiteStrictMode:
		return "Strict"
	case http.SameSiteLaxMode:
		return "Lax"
	default:
		return "Default"
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"CONFIG":                     "/etc/diner.json",
		"APP_TOKEN_SIGN_KEY":         "sign",
		"APP_TOKEN_ISSUER":           "issuer",
		"APP_TOKEN_DURATION":         "2h",
		"APP_ENV":                    "production",
		"APP_LOG_LEVEL":              "info",
		"STORAGE_DB_DATABASE_URI":    "postgres://u:p@localhost/db",
		"STORAGE_REDIS_ADDRESS":      "localhost:6379",
		"STORAGE_REDIS_PASSWORD":     "pw",
		"STORAGE_REDIS_DB":           "3",
		"STORAGE_REDIS_SEQUENCE_KEY": "seq",
		"SERVER_ADDRESS":             ":7001",
		"SERVER_REQUEST_TIMEOUT":     "15s",
		"SERVER_SHUTDOWN_TIMEOUT":    "5s",
		"SERVER_RATE_LIMIT":          "2.5",
		"SERVER_RATE_BURST":          "7",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/diner.json", cfg.JSONFilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "pw", cfg.Storage.Redis.Password)
	assert.Equal(t, 3, cfg.Storage.Redis.DB)
	assert.Equal(t, "seq", cfg.Storage.Redis.SequenceKey)
	assert.Equal(t, ":7001", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)
	assert.Equal(t, 7, cfg.Server.RateBurst)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_PlatformPort(t *testing.T) {
	t.Run("port used without server address", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "8081")

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	})

	t.Run("server address wins", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "8081")
		t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	})
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "APP_TOKEN_DURATION", val: "soon"},
		{name: "bad redis db", key: "STORAGE_REDIS_DB", val: "three"},
		{name: "bad rate limit", key: "SERVER_RATE_LIMIT", val: "fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, tt.val)

			err := parseEnv(&StructuredConfig{})
			assert.Error(t, err)
		})
	}
}
