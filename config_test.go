package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENDART_API_KEY", "")
	t.Setenv("DARTWATCH_OPENDART_API_KEY", "")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, defaultDartBaseURL, cfg.OpenDart.BaseURL)
	assert.Equal(t, defaultDartRateLimit, cfg.OpenDart.RateLimit)
	assert.Equal(t, corpSourceJSON, cfg.Corps.Source)
	assert.Equal(t, "data/corpCodes.json", cfg.Corps.JSONPath)
	assert.Empty(t, cfg.Redis.Addr)
	assert.ErrorIs(t, cfg.requireAPIKey(), errMissingAPIKey)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("OPENDART_API_KEY", "from-env")
	t.Setenv("DARTWATCH_HTTP_PORT", "9090")
	t.Setenv("DARTWATCH_REDIS_ADDR", "localhost:6379")

	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OpenDart.APIKey)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.NoError(t, cfg.requireAPIKey())
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("OPENDART_API_KEY", "")
	t.Setenv("DARTWATCH_OPENDART_API_KEY", "")

	path := filepath.Join(t.TempDir(), "dartwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 8181
opendart:
  api_key: from-file
  rate_limit: 2
corps:
  source: mysql
mysql:
  dsn: dart:dart@tcp(localhost:3306)/dartwatch
`), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.HTTP.Port)
	assert.Equal(t, "from-file", cfg.OpenDart.APIKey)
	assert.Equal(t, 2, cfg.OpenDart.RateLimit)
	assert.Equal(t, corpSourceMySQL, cfg.Corps.Source)
	assert.Equal(t, "dart:dart@tcp(localhost:3306)/dartwatch", cfg.MySQL.DSN)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
