package persistence

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// DepositSearchFilter narrows a deposit search; nil/zero fields are ignored
type DepositSearchFilter struct {
	UserID         uint64
	MinAmountCents *int64
	MaxAmountCents *int64
}

// DepositRepository defines persistence operations for wallet top-up records.
// Rows are append-only.
type DepositRepository interface {
	// Create persists a new deposit record and assigns its ID
	Create(ctx context.Context, deposit *entity.Deposit) error

	// ListByUser returns a user's deposits, newest first
	ListByUser(ctx context.Context, userID uint64, skip, limit int) ([]*entity.Deposit, error)

	// Search returns deposits matching the filter
	Search(ctx context.Context, filter DepositSearchFilter) ([]*entity.Deposit, error)
}
