package container

import (
	"context"
	"log/slog"

	"moviehub/internal/config"
	"moviehub/internal/database"
	preferencesDomain "moviehub/internal/domain/preferences"
	"moviehub/internal/maintenance"
	"moviehub/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *database.Database
	logger *slog.Logger

	// Services
	session            *database.MemoryStorage
	preferencesStore   *services.PreferencesStore
	preferencesService *services.PreferencesService
	maintenanceGate    *maintenance.Gate
}

// New creates a new dependency injection container
func New(ctx context.Context, cfg *config.Config, db *database.Database) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		config: cfg,
		db:     db,
		logger: logger,
	}

	c.initServices(ctx)
	return c
}

// initServices initializes all services with their dependencies
func (c *Container) initServices(ctx context.Context) {
	c.session = database.NewMemoryStorage()

	c.preferencesStore = services.NewPreferencesStore(&StorageAdapter{db: c.db}, c.logger)
	c.preferencesService = services.NewPreferencesService(c.preferencesStore)

	c.maintenanceGate = maintenance.NewGate(c.config.Maintenance, c.config.MaintenanceWindow, c.session, c.logger)

	state := c.preferencesStore.State()
	c.logger.Debug("Preferences loaded",
		"thumbnails", state.EnableThumbnails,
		"autoplay", state.EnableAutoplay,
		"discover", state.EnableDiscover,
		"source_order", state.SourceOrder,
		"source_order_enabled", state.EnableSourceOrder)
}

// GetPreferencesStore returns the reactive preferences store
func (c *Container) GetPreferencesStore() preferencesDomain.Store {
	return c.preferencesStore
}

// GetPreferencesService returns the preferences request handler
func (c *Container) GetPreferencesService() *services.PreferencesService {
	return c.preferencesService
}

// GetMaintenanceGate returns the downtime gate
func (c *Container) GetMaintenanceGate() *maintenance.Gate {
	return c.maintenanceGate
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Close releases the durable storage
func (c *Container) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
