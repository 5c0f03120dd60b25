package user

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
)

// UseCase handles user profile, balance and transaction-history reads
type UseCase struct {
	userRepo        persistence.UserRepository
	itemRepo        persistence.ItemRepository
	transactionRepo persistence.TransactionRepository
	logger          coreport.Logger
}

// NewUseCase creates a new user use case
func NewUseCase(
	userRepo persistence.UserRepository,
	itemRepo persistence.ItemRepository,
	transactionRepo persistence.TransactionRepository,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:        userRepo,
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// GetByID returns a user by ID
func (u *UseCase) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// GetBalance returns the user's wallet balance as a 2-decimal string
func (u *UseCase) GetBalance(ctx context.Context, userID uint64) (string, error) {
	user, err := u.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.FormattedBalance(), nil
}

// ProfileOverview bundles a user's wallet and item activity
type ProfileOverview struct {
	UserID         uint64
	Username       string
	WalletBalance  string
	ItemsForSale   []*entity.Item
	SoldItems      []*entity.Item
	PurchasedItems []*entity.Item
}

// GetProfileOverview returns the user's wallet balance together with their
// for-sale, sold and purchased items.
func (u *UseCase) GetProfileOverview(ctx context.Context, userID uint64) (*ProfileOverview, error) {
	user, err := u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	forSale, err := u.itemRepo.ListBySellerAndStatus(ctx, userID, entity.StatusForSale)
	if err != nil {
		return nil, err
	}
	sold, err := u.itemRepo.ListBySellerAndStatus(ctx, userID, entity.StatusSold)
	if err != nil {
		return nil, err
	}
	purchased, err := u.itemRepo.ListPurchasedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileOverview{
		UserID:         user.ID,
		Username:       user.Username,
		WalletBalance:  user.FormattedBalance(),
		ItemsForSale:   forSale,
		SoldItems:      sold,
		PurchasedItems: purchased,
	}, nil
}

// ListTransactions returns transactions where the user is buyer or seller,
// newest first.
func (u *UseCase) ListTransactions(ctx context.Context, userID uint64, skip, limit int) ([]*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return u.transactionRepo.ListByUser(ctx, userID, skip, limit)
}

// PartySummary is the public view of a transaction counterparty
type PartySummary struct {
	UserID   uint64
	Username string
	Email    string
}

// ItemSummary is the public view of a traded item
type ItemSummary struct {
	ItemID      uint64
	Name        string
	Description string
	Category    string
	Price       string
}

// TransactionDetail enriches a transaction with its parties and item
type TransactionDetail struct {
	Transaction *entity.Transaction
	Buyer       *PartySummary
	Seller      *PartySummary
	Item        *ItemSummary
}

// GetTransactionDetail returns a transaction with buyer, seller and item
// information. Only the buyer or the seller may view it.
func (u *UseCase) GetTransactionDetail(ctx context.Context, transactionID, callerID uint64) (*TransactionDetail, error) {
	txn, err := u.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !txn.Involves(callerID) {
		return nil, errs.ErrForbidden
	}

	detail := &TransactionDetail{Transaction: txn}

	if buyer, err := u.userRepo.GetByID(ctx, txn.BuyerUserID); err == nil {
		detail.Buyer = &PartySummary{UserID: buyer.ID, Username: buyer.Username, Email: buyer.Email}
	}
	if seller, err := u.userRepo.GetByID(ctx, txn.SellerUserID); err == nil {
		detail.Seller = &PartySummary{UserID: seller.ID, Username: seller.Username, Email: seller.Email}
	}
	if item, err := u.itemRepo.GetByID(ctx, txn.ItemID); err == nil {
		detail.Item = &ItemSummary{
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Price:       item.FormattedPrice(),
		}
	}

	return detail, nil
}

// Search returns users matching the filter (admin-facing)
func (u *UseCase) Search(ctx context.Context, filter persistence.UserSearchFilter) ([]*entity.User, error) {
	return u.userRepo.Search(ctx, filter)
}
