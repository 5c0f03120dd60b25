package model

import (
	"time"
)

// Deposit represents the database model for wallet deposits
type Deposit struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	AmountCents int64     `gorm:"not null"` // Amount in cents
	DepositTime time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Deposit
func (Deposit) TableName() string {
	return "deposits"
}
