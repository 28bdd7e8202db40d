package application

import (
	"context"

	"moviehub/internal/config"
	"moviehub/internal/container"
	"moviehub/internal/database"
	"moviehub/internal/maintenance"
	"moviehub/internal/models"
	"moviehub/internal/player"
	"moviehub/internal/transport"
)

type App struct {
	ctx       context.Context
	container *container.Container
	wailsApp  *transport.WailsApp
	config    *config.Config
	opts      []transport.Option
}

func NewApp(opts ...transport.Option) *App {
	return &App{opts: opts}
}

func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize configuration
	cfg := config.New()
	a.config = cfg

	if err := a.startWith(ctx, cfg); err != nil {
		cfg.Logger.Error("Failed to start application", "error", err)
	}
}

// startWith wires storage, services and transport for cfg
func (a *App) startWith(ctx context.Context, cfg *config.Config) error {
	a.ctx = ctx
	a.config = cfg

	// Initialize durable storage
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		return NewPreferencesError("open storage", err)
	}

	// Initialize dependency container
	a.container = container.New(ctx, cfg, db)

	// Initialize transport layer
	a.wailsApp = transport.NewWailsApp(
		ctx,
		a.container.GetPreferencesStore(),
		a.container.GetPreferencesService(),
		a.container.GetMaintenanceGate(),
		cfg.Logger,
		a.opts...,
	)
	a.wailsApp.Start()

	cfg.Logger.Info("Wails app initialized successfully")
	cfg.Logger.Info("Application configuration",
		"app_data_dir", cfg.AppDataDir,
		"database_path", cfg.DatabasePath,
		"maintenance", cfg.Maintenance)
	return nil
}

func (a *App) OnShutdown(ctx context.Context) {
	if a.wailsApp != nil {
		a.wailsApp.Stop()
	}
	if a.container != nil {
		if err := a.container.Close(); err != nil {
			a.config.Logger.Warn("Failed to close storage", "error", err)
		}
	}
}

func (a *App) ready() error {
	if a.wailsApp == nil {
		return ErrNotReady
	}
	return nil
}

func (a *App) GetPreferences() (*models.PreferencesState, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	return a.wailsApp.GetPreferences()
}

func (a *App) UpdatePreferences(data map[string]interface{}) error {
	if err := a.ready(); err != nil {
		return err
	}
	if err := a.wailsApp.UpdatePreferences(data); err != nil {
		return NewPreferencesError("update", err)
	}
	return nil
}

func (a *App) SetEnableThumbnails(v bool) {
	if a.ready() == nil {
		a.wailsApp.SetEnableThumbnails(v)
	}
}

func (a *App) SetEnableAutoplay(v bool) {
	if a.ready() == nil {
		a.wailsApp.SetEnableAutoplay(v)
	}
}

func (a *App) SetEnableDiscover(v bool) {
	if a.ready() == nil {
		a.wailsApp.SetEnableDiscover(v)
	}
}

func (a *App) SetSourceOrder(v []string) {
	if a.ready() == nil {
		a.wailsApp.SetSourceOrder(v)
	}
}

func (a *App) SetEnableSourceOrder(v bool) {
	if a.ready() == nil {
		a.wailsApp.SetEnableSourceOrder(v)
	}
}

func (a *App) ExportPreferences() (transport.TransferResult, error) {
	if err := a.ready(); err != nil {
		return transport.TransferResult{}, err
	}
	result, err := a.wailsApp.ExportPreferences()
	if err != nil {
		return result, NewPreferencesError("export", err)
	}
	return result, nil
}

func (a *App) ImportPreferences() (transport.TransferResult, error) {
	if err := a.ready(); err != nil {
		return transport.TransferResult{}, err
	}
	result, err := a.wailsApp.ImportPreferences()
	if err != nil {
		return result, NewPreferencesError("import", err)
	}
	return result, nil
}

func (a *App) SkipIntroState(request transport.SkipIntroRequest) player.ButtonState {
	if a.ready() != nil {
		return player.ButtonState{Mode: player.VisibilityNone}
	}
	return a.wailsApp.SkipIntroState(request)
}

func (a *App) SkipIntroTarget(data player.SkipData) transport.SkipTargetResponse {
	if a.ready() != nil {
		return transport.SkipTargetResponse{}
	}
	return a.wailsApp.SkipIntroTarget(data)
}

func (a *App) MaintenanceStatus() maintenance.Status {
	if a.ready() != nil {
		return maintenance.Status{}
	}
	return a.wailsApp.MaintenanceStatus()
}

func (a *App) DismissMaintenance() maintenance.Status {
	if a.ready() != nil {
		return maintenance.Status{}
	}
	return a.wailsApp.DismissMaintenance()
}
