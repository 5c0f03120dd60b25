package persistence

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// TokenRepository defines persistence operations for access tokens
type TokenRepository interface {
	// Replace deletes any existing tokens for the user and stores the new one
	Replace(ctx context.Context, token *entity.UserToken) error

	// GetValid returns the user's unexpired token, or ErrNotFound
	GetValid(ctx context.Context, userID uint64) (*entity.UserToken, error)
}
