package application

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/config"
	"moviehub/internal/player"
	"moviehub/internal/transport"
)

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	return &config.Config{
		AppDataDir:        dir,
		DatabasePath:      filepath.Join(dir, "storage.sqlite3"),
		MaintenanceWindow: "tonight",
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func startTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	app := NewApp(transport.WithEmitter(func(context.Context, string, ...interface{}) {}))
	require.NoError(t, app.startWith(context.Background(), cfg))
	t.Cleanup(func() { app.OnShutdown(context.Background()) })
	return app
}

func TestApp_NotReady(t *testing.T) {
	app := NewApp()

	_, err := app.GetPreferences()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, app.UpdatePreferences(map[string]interface{}{}), ErrNotReady)

	// setters are no-ops before startup
	app.SetEnableAutoplay(false)
	assert.Equal(t, player.VisibilityNone, app.SkipIntroState(transport.SkipIntroRequest{}).Mode)
	assert.False(t, app.MaintenanceStatus().Showing)
}

func TestApp_PreferencesSurviveRestart(t *testing.T) {
	cfg := testConfig(t, t.TempDir())

	first := NewApp(transport.WithEmitter(func(context.Context, string, ...interface{}) {}))
	require.NoError(t, first.startWith(context.Background(), cfg))
	first.SetSourceOrder([]string{"A", "B", "C"})
	first.SetEnableSourceOrder(true)
	first.SetEnableAutoplay(false)
	first.OnShutdown(context.Background())

	second := startTestApp(t, cfg)
	prefs, err := second.GetPreferences()
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, prefs.SourceOrder)
	assert.True(t, prefs.EnableSourceOrder)
	assert.False(t, prefs.EnableAutoplay)
	assert.True(t, prefs.EnableDiscover)
	assert.False(t, prefs.EnableThumbnails)
}

func TestApp_FreshStorageUsesDefaults(t *testing.T) {
	app := startTestApp(t, testConfig(t, t.TempDir()))

	prefs, err := app.GetPreferences()
	require.NoError(t, err)

	assert.False(t, prefs.EnableThumbnails)
	assert.True(t, prefs.EnableAutoplay)
	assert.True(t, prefs.EnableDiscover)
	assert.Empty(t, prefs.SourceOrder)
	assert.False(t, prefs.EnableSourceOrder)
}

func TestApp_UpdatePreferencesWrapsError(t *testing.T) {
	app := startTestApp(t, testConfig(t, t.TempDir()))

	err := app.UpdatePreferences(map[string]interface{}{"unknown": true})

	var prefsErr *PreferencesError
	require.ErrorAs(t, err, &prefsErr)
	assert.Equal(t, "update", prefsErr.Operation)
}

func TestApp_Maintenance(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.Maintenance = true
	app := startTestApp(t, cfg)

	assert.True(t, app.MaintenanceStatus().Showing)
	assert.False(t, app.DismissMaintenance().Showing)
}

func TestApp_StartFailsOnBadPath(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.DatabasePath = filepath.Join(cfg.AppDataDir, "missing", "dir", "storage.sqlite3")

	err := NewApp().startWith(context.Background(), cfg)

	var prefsErr *PreferencesError
	assert.ErrorAs(t, err, &prefsErr)
}
