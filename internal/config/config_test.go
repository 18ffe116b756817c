package config

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Psql.Enabled)
	assert.False(t, cfg.AMQP.Enabled)
	assert.Equal(t, "campaign_sync", cfg.AMQP.Queue)
	assert.Equal(t, "localhost:8081", cfg.AdServer.BaseURL.Host)
	assert.Equal(t, "USD", cfg.AdServer.Currency)
	assert.Equal(t, "mw_card_test_1", cfg.AdServer.AdUnitID)
	assert.Equal(t, 30*time.Second, cfg.AdServer.Timeout())
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADSERVER_BASE_URL", "https://gateway.example.com/ads")
	t.Setenv("ADSERVER_TOKEN", "secret")
	t.Setenv("ADSERVER_TRAFFICKER_ID", "1234")
	t.Setenv("ADSERVER_TIME_ZONE", "UTC")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gateway.example.com", cfg.AdServer.BaseURL.Host)
	assert.Equal(t, "secret", cfg.AdServer.Token)
	assert.Equal(t, int64(1234), cfg.AdServer.TraffickerID)
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "json", cfg.Log.SlogFormat())

	loc, err := cfg.AdServer.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoggerNew(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())

	var buf bytes.Buffer
	logger := cfg.Log.New(&buf)
	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}
