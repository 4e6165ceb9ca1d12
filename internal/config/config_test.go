package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"vic/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Empty(t, cfg.Metrics.File)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("VIC_ENVIRONMENT", "production")
	t.Setenv("VIC_METRICS_FILE", "/tmp/vic.prom")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/tmp/vic.prom", cfg.Metrics.File)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\nlog:\n  level: debug\n"), 0o600))

	t.Setenv("VIC_LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "error", cfg.Log.Level, "environment overrides the file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
