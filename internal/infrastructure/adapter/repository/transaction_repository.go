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

// TransactionRepository implements the TransactionRepository port using GORM.
// Rows are append-only.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                 txnModel.ID,
		ItemID:             txnModel.ItemID,
		BuyerUserID:        txnModel.BuyerUserID,
		SellerUserID:       txnModel.SellerUserID,
		QuantityPurchased:  txnModel.QuantityPurchased,
		PurchasePriceCents: txnModel.PurchasePriceCents,
		TotalAmountCents:   txnModel.TotalAmountCents,
		TransactionTime:    txnModel.TransactionTime,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrConflict
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// Create persists a new transaction record and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := model.Transaction{
		ItemID:             txn.ItemID,
		BuyerUserID:        txn.BuyerUserID,
		SellerUserID:       txn.SellerUserID,
		QuantityPurchased:  txn.QuantityPurchased,
		PurchasePriceCents: txn.PurchasePriceCents,
		TotalAmountCents:   txn.TotalAmountCents,
		TransactionTime:    txn.TransactionTime,
	}

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	txn.ID = txnModel.ID
	return nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).First(&txnModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error)
	}

	return r.modelToEntity(&txnModel), nil
}

// ListByUser returns transactions where the user is buyer or seller, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, skip, limit int) ([]*entity.Transaction, error) {
	skip, limit = normalizePage(skip, limit)

	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("buyer_user_id = ? OR seller_user_id = ?", userID, userID).
		Order("transaction_time DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing transactions", err)
	}

	txns := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		txns = append(txns, r.modelToEntity(&models[i]))
	}
	return txns, nil
}
