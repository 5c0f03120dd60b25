package model

import (
	"time"
)

// MigrationVersion tracks the applied database schema version
type MigrationVersion struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"not null;size:20"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for MigrationVersion
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
