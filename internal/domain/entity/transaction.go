package entity

import (
	"time"
)

// Transaction is the immutable record of a completed purchase. It is created
// exclusively by the purchase engine as the final step of a successful
// purchase and is never mutated or deleted afterwards.
type Transaction struct {
	ID                 uint64
	ItemID             uint64
	BuyerUserID        uint64
	SellerUserID       uint64
	QuantityPurchased  int
	PurchasePriceCents int64 // unit price snapshot at time of sale
	TotalAmountCents   int64 // purchase price * quantity, exact in cents
	TransactionTime    time.Time
}

// FormattedPurchasePrice returns the unit price as a 2-decimal string
func (t *Transaction) FormattedPurchasePrice() string {
	return CentsToString(t.PurchasePriceCents)
}

// FormattedTotalAmount returns the total as a 2-decimal string
func (t *Transaction) FormattedTotalAmount() string {
	return CentsToString(t.TotalAmountCents)
}

// Involves reports whether the given user is the buyer or the seller
func (t *Transaction) Involves(userID uint64) bool {
	return t.BuyerUserID == userID || t.SellerUserID == userID
}
