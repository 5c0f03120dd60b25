package model

import (
	"time"
)

// Item represents the database model for listings
type Item struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	SellerUserID uint64    `gorm:"not null;index"`
	Name         string    `gorm:"not null;size:200;index"`
	Description  string    `gorm:"type:text"`
	Category     string    `gorm:"size:100;index"`
	PriceCents   int64     `gorm:"not null"` // Price in cents
	Quantity     int       `gorm:"not null"`
	Status       string    `gorm:"not null;size:20;index"`
	ListedAt     time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`

	Seller User `gorm:"foreignKey:SellerUserID;references:ID"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}
