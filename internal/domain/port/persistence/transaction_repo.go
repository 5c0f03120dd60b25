package persistence

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// TransactionRepository defines persistence operations for purchase records.
// Rows are append-only; there is no update or delete.
type TransactionRepository interface {
	// Create persists a new transaction record and assigns its ID
	Create(ctx context.Context, txn *entity.Transaction) error

	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// ListByUser returns transactions where the user is buyer or seller,
	// newest first
	ListByUser(ctx context.Context, userID uint64, skip, limit int) ([]*entity.Transaction, error)
}
