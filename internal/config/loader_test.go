package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "libsql", cfg.Store.Driver)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	require.Equal(t, 3, cfg.Check.MaxRetries)
	require.Equal(t, 100*time.Millisecond, cfg.Check.RetryBaseDelay)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 9999
cache:
  enabled: false
  ttl: 1h
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9999, cfg.Server.Port)
	require.False(t, cfg.Cache.Enabled)
	require.Equal(t, time.Hour, cfg.Cache.TTL)
	require.Equal(t, "debug", cfg.Logging.Level)

	// Unset values keep their defaults.
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, "libsql", cfg.Store.Driver)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NAMEWASTAKEN_SERVER_PORT", "7070")
	t.Setenv("NAMEWASTAKEN_LOGGING_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  host: 0.0.0.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestDefaultStorePath(t *testing.T) {
	path := DefaultStorePath()
	require.Contains(t, path, ".namewastaken")
	require.Equal(t, "cache.db", filepath.Base(path))
}
