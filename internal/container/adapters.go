package container

import (
	"fmt"

	"moviehub/internal/database"
	preferencesDomain "moviehub/internal/domain/preferences"
)

// StorageAdapter adapts database.Database to preferencesDomain.Storage
type StorageAdapter struct {
	db *database.Database
}

var _ preferencesDomain.Storage = (*StorageAdapter)(nil)

func (a *StorageAdapter) GetItem(key string) (string, bool, error) {
	if a.db == nil {
		return "", false, nil
	}
	value, found, err := a.db.GetItem(key)
	if err != nil {
		return "", false, fmt.Errorf("get item %s: %w", key, err)
	}
	return value, found, nil
}

func (a *StorageAdapter) SetItem(key, value string) error {
	if a.db == nil {
		return fmt.Errorf("set item %s: storage not initialized", key)
	}
	if err := a.db.SetItem(key, value); err != nil {
		return fmt.Errorf("set item %s: %w", key, err)
	}
	return nil
}

func (a *StorageAdapter) RemoveItem(key string) error {
	if a.db == nil {
		return nil
	}
	if err := a.db.RemoveItem(key); err != nil {
		return fmt.Errorf("remove item %s: %w", key, err)
	}
	return nil
}
