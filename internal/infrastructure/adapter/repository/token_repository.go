package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TokenRepository implements the TokenRepository port using GORM.
// Each user holds at most one token row.
type TokenRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTokenRepository creates a new TokenRepository instance
func NewTokenRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TokenRepository {
	return &TokenRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Replace deletes any existing tokens for the user and stores the new one
func (r *TokenRepository) Replace(ctx context.Context, token *entity.UserToken) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&model.UserToken{}).Error; err != nil {
			return err
		}

		tokenModel := model.UserToken{
			UserID:    token.UserID,
			Token:     token.Token,
			ExpiresAt: token.ExpiresAt,
			CreatedAt: token.CreatedAt,
			UpdatedAt: token.UpdatedAt,
		}
		if err := tx.Create(&tokenModel).Error; err != nil {
			return err
		}

		token.ID = tokenModel.ID
		return nil
	})
	if err != nil {
		r.logger.Error("Database error when replacing token", map[string]any{
			"user_id": token.UserID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
	}

	return nil
}

// GetValid returns the user's unexpired token, or ErrNotFound
func (r *TokenRepository) GetValid(ctx context.Context, userID uint64) (*entity.UserToken, error) {
	var tokenModel model.UserToken
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, r.timeProvider.Now()).
		First(&tokenModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		r.logger.Error("Database error when getting token", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return &entity.UserToken{
		ID:        tokenModel.ID,
		UserID:    tokenModel.UserID,
		Token:     tokenModel.Token,
		ExpiresAt: tokenModel.ExpiresAt,
		CreatedAt: tokenModel.CreatedAt,
		UpdatedAt: tokenModel.UpdatedAt,
	}, nil
}
