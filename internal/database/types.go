package database

import (
	"time"
)

// StorageItem is one key/value record in durable storage
type StorageItem struct {
	Key       string    `gorm:"column:item_key;primaryKey;type:text" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm naming strategy
func (StorageItem) TableName() string {
	return "storage_items"
}
