package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Database handles durable key/value storage operations
type Database struct {
	db *gorm.DB
}

// NewDatabase opens the SQLite database at dbPath and migrates the schema
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return FromGorm(db)
}

// FromGorm wraps an already opened gorm handle
func FromGorm(db *gorm.DB) (*Database, error) {
	// Auto-migrate the schema
	if err := db.AutoMigrate(&StorageItem{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Database{db: db}, nil
}

// GetItem returns the value stored under key
func (d *Database) GetItem(key string) (string, bool, error) {
	var item StorageItem

	result := d.db.Where("item_key = ?", key).Limit(1).Find(&item)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}

	return item.Value, true, nil
}

// SetItem stores value under key, overwriting any previous value
func (d *Database) SetItem(key, value string) error {
	item := StorageItem{Key: key, Value: value}

	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

// RemoveItem deletes the record stored under key
func (d *Database) RemoveItem(key string) error {
	return d.db.Where("item_key = ?", key).Delete(&StorageItem{}).Error
}

// Keys lists every stored key in ascending order
func (d *Database) Keys() ([]string, error) {
	var keys []string
	if err := d.db.Model(&StorageItem{}).Order("item_key").Pluck("item_key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// Count returns the number of stored records
func (d *Database) Count() (int64, error) {
	var n int64
	err := d.db.Model(&StorageItem{}).Count(&n).Error
	return n, err
}

// Close releases the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		if errors.Is(err, gorm.ErrInvalidDB) {
			return nil
		}
		return err
	}
	return sqlDB.Close()
}
