package common

const (
	// Event names emitted to the frontend
	EventPreferencesChanged = "preferences:changed"
	EventMaintenanceChanged = "maintenance:changed"

	// File operation constants
	DefaultDirPermissions = 0755

	// Storage file name inside the app data directory
	DatabaseFileName = "storage.sqlite3"
)
