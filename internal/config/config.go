package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"moviehub/internal/common"
)

const (
	envDataDir            = "MOVIEHUB_DATA_DIR"
	envLogLevel           = "MOVIEHUB_LOG_LEVEL"
	envMaintenance        = "MOVIEHUB_MAINTENANCE"
	envMaintenanceWindow  = "MOVIEHUB_MAINTENANCE_WINDOW"
	defaultMaintenanceMsg = "March 31th 11:00 PM - 5:00 AM EST"
)

// Config holds application configuration
type Config struct {
	AppDataDir        string
	DatabasePath      string
	LogLevel          slog.Level
	Maintenance       bool
	MaintenanceWindow string
	Logger            *slog.Logger
}

// New creates a new configuration instance from the environment
func New() *Config {
	cfg := &Config{}

	cfg.setupDirectories()
	cfg.loadEnvFile()
	cfg.applyEnv()
	cfg.setupLogger()

	return cfg
}

func (c *Config) setupDirectories() {
	c.AppDataDir = os.Getenv(envDataDir)
	if c.AppDataDir == "" {
		c.AppDataDir = getAppDataDir()
	}

	// Ensure app data directory exists
	if err := common.EnsureDir(c.AppDataDir); err != nil {
		slog.Warn("Failed to create app data directory", "path", c.AppDataDir, "error", err)
	}

	c.DatabasePath = filepath.Join(c.AppDataDir, common.DatabaseFileName)
}

// loadEnvFile reads an optional .env next to the database. Variables already
// set in the process environment win.
func (c *Config) loadEnvFile() {
	envPath := filepath.Join(c.AppDataDir, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return
	}
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Failed to load env file", "path", envPath, "error", err)
	}
}

func (c *Config) applyEnv() {
	c.LogLevel = ParseLogLevel(os.Getenv(envLogLevel))
	c.MaintenanceWindow = defaultMaintenanceMsg

	if v := os.Getenv(envMaintenance); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("Ignoring invalid maintenance flag", "value", v, "error", err)
		} else {
			c.Maintenance = enabled
		}
	}
	if v := os.Getenv(envMaintenanceWindow); v != "" {
		c.MaintenanceWindow = v
	}
}

func (c *Config) setupLogger() {
	c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

// ParseLogLevel maps a level name to a slog level, defaulting to info
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getAppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "MovieHub")
}
