package purchase

import (
	"context"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
)

// Engine executes the atomic purchase workflow. All reads and writes for one
// purchase happen inside a single unit of work: the item row and both user
// rows are locked FOR UPDATE, so two concurrent purchases against the same
// item serialize and the second one re-reads the decremented stock.
type Engine struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a new purchase engine
func NewEngine(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Purchase buys quantity units of the item for the buyer. On success the
// buyer is debited, the seller credited, the item stock decremented (status
// flipped to sold at zero) and an immutable transaction record appended, all
// or nothing.
func (e *Engine) Purchase(ctx context.Context, buyerID, itemID uint64, quantity int) (*entity.Transaction, error) {
	if buyerID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if itemID == 0 {
		return nil, errs.ErrItemNotFound
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin purchase: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
				e.logger.Error("Failed to roll back purchase", map[string]any{
					"item_id":  itemID,
					"buyer_id": buyerID,
					"error":    rbErr.Error(),
				})
			}
		}
	}()

	items := e.uow.Items(txCtx)
	users := e.uow.Users(txCtx)

	// Lock the item row first; it is the contended resource.
	item, err := items.GetByIDForUpdate(txCtx, itemID)
	if err != nil {
		return nil, err
	}

	if item.Status != entity.StatusForSale {
		e.logger.Warn("Purchase attempt on unavailable item", map[string]any{
			"item_id":  itemID,
			"buyer_id": buyerID,
			"status":   string(item.Status),
		})
		return nil, errs.ErrItemUnavailable
	}

	if quantity > item.Quantity {
		return nil, entity.NewInsufficientStock(item, quantity)
	}

	if item.IsOwnedBy(buyerID) {
		return nil, errs.ErrSelfPurchase
	}

	buyer, seller, err := e.lockTradingParties(txCtx, users, buyerID, item.SellerUserID)
	if err != nil {
		return nil, err
	}

	// Unit price in cents times an integer quantity is exact; no rounding.
	totalCents := item.PriceCents() * int64(quantity)

	if !buyer.CanDeduct(totalCents) {
		return nil, errs.NewInsufficientFundsError(buyerID, entity.CentsToString(totalCents), buyer.FormattedBalance())
	}

	if err := buyer.Debit(totalCents, e.timeProvider); err != nil {
		return nil, err
	}
	seller.Credit(totalCents, e.timeProvider)

	if err := item.ConsumeStock(quantity, e.timeProvider); err != nil {
		return nil, err
	}

	if err := users.UpdateBalance(txCtx, buyer); err != nil {
		return nil, errs.NewPurchaseError(itemID, buyerID, "failed to debit buyer", err)
	}
	if err := users.UpdateBalance(txCtx, seller); err != nil {
		return nil, errs.NewPurchaseError(itemID, buyerID, "failed to credit seller", err)
	}
	if err := items.Update(txCtx, item); err != nil {
		return nil, errs.NewPurchaseError(itemID, buyerID, "failed to update item stock", err)
	}

	txn := &entity.Transaction{
		ItemID:             item.ID,
		BuyerUserID:        buyerID,
		SellerUserID:       item.SellerUserID,
		QuantityPurchased:  quantity,
		PurchasePriceCents: item.PriceCents(),
		TotalAmountCents:   totalCents,
		TransactionTime:    e.timeProvider.Now(),
	}
	if err := e.uow.Transactions(txCtx).Create(txCtx, txn); err != nil {
		return nil, errs.NewPurchaseError(itemID, buyerID, "failed to record transaction", err)
	}

	if err := e.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	e.logger.Info("Purchase completed", map[string]any{
		"transaction_id": txn.ID,
		"item_id":        item.ID,
		"buyer_id":       buyerID,
		"seller_id":      item.SellerUserID,
		"quantity":       quantity,
		"total_amount":   txn.FormattedTotalAmount(),
		"item_status":    string(item.Status),
	})

	return txn, nil
}

// lockTradingParties locks the buyer and seller rows in ascending ID order so
// that two purchases touching the same pair of users cannot deadlock.
func (e *Engine) lockTradingParties(
	ctx context.Context,
	users persistence.UserRepository,
	buyerID, sellerID uint64,
) (buyer, seller *entity.User, err error) {
	first, second := buyerID, sellerID
	if sellerID < buyerID {
		first, second = sellerID, buyerID
	}

	firstUser, err := users.GetByIDForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondUser, err := users.GetByIDForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if firstUser.ID == buyerID {
		return firstUser, secondUser, nil
	}
	return secondUser, firstUser, nil
}
