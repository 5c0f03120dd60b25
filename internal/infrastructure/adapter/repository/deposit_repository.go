package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// DepositRepository implements the DepositRepository port using GORM.
// Rows are append-only.
type DepositRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDepositRepository creates a new DepositRepository instance
func NewDepositRepository(db *gorm.DB, logger coreport.Logger) *DepositRepository {
	return &DepositRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *DepositRepository) modelToEntity(depositModel *model.Deposit) *entity.Deposit {
	return &entity.Deposit{
		ID:          depositModel.ID,
		UserID:      depositModel.UserID,
		AmountCents: depositModel.AmountCents,
		DepositTime: depositModel.DepositTime,
	}
}

func (r *DepositRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// Create persists a new deposit record and assigns its ID
func (r *DepositRepository) Create(ctx context.Context, deposit *entity.Deposit) error {
	depositModel := model.Deposit{
		UserID:      deposit.UserID,
		AmountCents: deposit.AmountCents,
		DepositTime: deposit.DepositTime,
	}

	result := r.db.WithContext(ctx).Create(&depositModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating deposit", result.Error)
	}

	deposit.ID = depositModel.ID
	return nil
}

// ListByUser returns a user's deposits, newest first
func (r *DepositRepository) ListByUser(ctx context.Context, userID uint64, skip, limit int) ([]*entity.Deposit, error) {
	skip, limit = normalizePage(skip, limit)

	var models []model.Deposit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("deposit_time DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing deposits", err)
	}

	return r.toEntities(models), nil
}

// Search returns deposits matching the filter
func (r *DepositRepository) Search(ctx context.Context, filter persistence.DepositSearchFilter) ([]*entity.Deposit, error) {
	query := r.db.WithContext(ctx).Model(&model.Deposit{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.MinAmountCents != nil {
		query = query.Where("amount_cents >= ?", *filter.MinAmountCents)
	}
	if filter.MaxAmountCents != nil {
		query = query.Where("amount_cents <= ?", *filter.MaxAmountCents)
	}

	var models []model.Deposit
	if err := query.Order("deposit_time DESC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("searching deposits", err)
	}

	return r.toEntities(models), nil
}

func (r *DepositRepository) toEntities(models []model.Deposit) []*entity.Deposit {
	deposits := make([]*entity.Deposit, 0, len(models))
	for i := range models {
		deposits = append(deposits, r.modelToEntity(&models[i]))
	}
	return deposits
}
