package entity

import (
	"time"
)

// Deposit is the immutable record of a wallet top-up. One row is appended per
// deposit call; rows are never mutated.
type Deposit struct {
	ID          uint64
	UserID      uint64
	AmountCents int64 // always > 0
	DepositTime time.Time
}

// FormattedAmount returns the amount as a 2-decimal string
func (d *Deposit) FormattedAmount() string {
	return CentsToString(d.AmountCents)
}
