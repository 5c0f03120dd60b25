package persistence

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// UserSearchFilter narrows a user search; nil fields are ignored
type UserSearchFilter struct {
	Username        string
	Email           string
	MinBalanceCents *int64
	MaxBalanceCents *int64
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by ID holding a row-level write lock.
	// Must be called inside a unit of work; the lock is released on commit or
	// rollback.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and assigns its ID
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance persists the user's balance and updated-at timestamp
	UpdateBalance(ctx context.Context, user *entity.User) error

	// Search returns users matching the filter
	Search(ctx context.Context, filter UserSearchFilter) ([]*entity.User, error)
}
