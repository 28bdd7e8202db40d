package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DataDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv(envDataDir, dir)
	t.Setenv(envLogLevel, "")
	t.Setenv(envMaintenance, "")
	t.Setenv(envMaintenanceWindow, "")

	cfg := New()

	assert.Equal(t, dir, cfg.AppDataDir)
	assert.Equal(t, filepath.Join(dir, "storage.sqlite3"), cfg.DatabasePath)
	assert.DirExists(t, dir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.Maintenance)
	assert.Equal(t, defaultMaintenanceMsg, cfg.MaintenanceWindow)
	require.NotNil(t, cfg.Logger)
}

func TestNew_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envDataDir, dir)
	t.Setenv(envLogLevel, "")
	t.Setenv(envMaintenance, "")
	t.Setenv(envMaintenanceWindow, "")
	// godotenv only fills unset variables; t.Setenv restores them afterwards
	os.Unsetenv(envMaintenance)
	os.Unsetenv(envMaintenanceWindow)

	env := "MOVIEHUB_MAINTENANCE=true\nMOVIEHUB_MAINTENANCE_WINDOW=Sunday 02:00 UTC\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg := New()

	assert.True(t, cfg.Maintenance)
	assert.Equal(t, "Sunday 02:00 UTC", cfg.MaintenanceWindow)
}

func TestNew_InvalidMaintenanceFlag(t *testing.T) {
	t.Setenv(envDataDir, t.TempDir())
	t.Setenv(envMaintenance, "sometimes")

	cfg := New()

	assert.False(t, cfg.Maintenance)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "input %q", in)
	}
}
