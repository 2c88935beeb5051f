package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one key-value blob when the store is backed by a SQL database.
type KVEntry struct {
	Key       string         `gorm:"column:store_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
