package model

import (
	"time"
)

// Transaction represents the database model for completed purchases.
// Rows are append-only; there is no update path.
type Transaction struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	ItemID             uint64    `gorm:"not null;index"`
	BuyerUserID        uint64    `gorm:"not null;index"`
	SellerUserID       uint64    `gorm:"not null;index"`
	QuantityPurchased  int       `gorm:"not null"`
	PurchasePriceCents int64     `gorm:"not null"` // Unit price in cents at purchase time
	TotalAmountCents   int64     `gorm:"not null"`
	TransactionTime    time.Time `gorm:"not null;index"`

	Item   Item `gorm:"foreignKey:ItemID;references:ID"`
	Buyer  User `gorm:"foreignKey:BuyerUserID;references:ID"`
	Seller User `gorm:"foreignKey:SellerUserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
