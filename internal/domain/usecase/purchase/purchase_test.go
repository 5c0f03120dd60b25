package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	"github.com/bazaarhq/marketplace/mocks/port/core"
	"github.com/bazaarhq/marketplace/mocks/port/persistence"
)

type ctxKey string

func TestEngine_Purchase(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	// Common test variables
	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), struct{}{})
	buyerID := uint64(10)
	sellerID := uint64(20)
	itemID := uint64(7)

	newBuyer := func(balanceCents int64) *entity.User {
		buyer := &entity.User{ID: buyerID, Username: "buyer"}
		buyer.SetBalance(balanceCents)
		return buyer
	}

	newSeller := func(balanceCents int64) *entity.User {
		seller := &entity.User{ID: sellerID, Username: "seller"}
		seller.SetBalance(balanceCents)
		return seller
	}

	newForSaleItem := func(priceCents int64, quantity int) *entity.Item {
		item := &entity.Item{
			ID:           itemID,
			SellerUserID: sellerID,
			Name:         "Vintage Camera",
			Quantity:     quantity,
			Status:       entity.StatusForSale,
		}
		_ = item.SetPriceCents(priceCents)
		return item
	}

	t.Run("should complete purchase and move funds exactly", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTxns := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		buyer := newBuyer(10000)   // 100.00
		seller := newSeller(5000)  // 50.00
		item := newForSaleItem(1500, 5)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Transactions", txCtx).Return(mockTxns)
		mockUow.On("Commit", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		// Buyer and seller rows are locked in ascending ID order
		mockUsers.On("GetByIDForUpdate", txCtx, buyerID).Return(buyer, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, sellerID).Return(seller, nil)
		mockUsers.On("UpdateBalance", txCtx, buyer).Return(nil)
		mockUsers.On("UpdateBalance", txCtx, seller).Return(nil)
		mockItems.On("Update", txCtx, item).Return(nil)
		mockTxns.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		mockLogger.On("Info", "Purchase completed", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 2)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, txn)
		assert.Equal(t, itemID, txn.ItemID)
		assert.Equal(t, buyerID, txn.BuyerUserID)
		assert.Equal(t, sellerID, txn.SellerUserID)
		assert.Equal(t, 2, txn.QuantityPurchased)
		assert.Equal(t, int64(1500), txn.PurchasePriceCents)
		assert.Equal(t, int64(3000), txn.TotalAmountCents)
		assert.Equal(t, fixedTime, txn.TransactionTime)

		// Buyer pays exactly price * quantity, seller receives the same
		assert.Equal(t, "70.00", buyer.FormattedBalance())
		assert.Equal(t, "80.00", seller.FormattedBalance())

		// Stock decremented, item still for sale
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, entity.StatusForSale, item.Status)

		// No rollback on the happy path
		mockUow.AssertNotCalled(t, "Rollback", mock.Anything)

		mockUow.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
		mockItems.AssertExpectations(t)
		mockTxns.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should conserve total money across the trade", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTxns := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		buyer := newBuyer(7777)
		seller := newSeller(1234)
		totalBefore := buyer.Balance() + seller.Balance()
		item := newForSaleItem(333, 3)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Transactions", txCtx).Return(mockTxns)
		mockUow.On("Commit", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, buyerID).Return(buyer, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, sellerID).Return(seller, nil)
		mockUsers.On("UpdateBalance", txCtx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockItems.On("Update", txCtx, item).Return(nil)
		mockTxns.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		mockLogger.On("Info", "Purchase completed", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 3)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(999), txn.TotalAmountCents)
		assert.Equal(t, totalBefore, buyer.Balance()+seller.Balance())
	})

	t.Run("should flip item to sold when stock is exhausted", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTxns := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		buyer := newBuyer(10000)
		seller := newSeller(0)
		item := newForSaleItem(1000, 2)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Transactions", txCtx).Return(mockTxns)
		mockUow.On("Commit", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, buyerID).Return(buyer, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, sellerID).Return(seller, nil)
		mockUsers.On("UpdateBalance", txCtx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockItems.On("Update", txCtx, item).Return(nil)
		mockTxns.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		mockLogger.On("Info", "Purchase completed", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		_, err := engine.Purchase(ctx, buyerID, itemID, 2)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0, item.Quantity)
		assert.Equal(t, entity.StatusSold, item.Status)
	})

	t.Run("should reject purchase with insufficient funds and roll back", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		buyer := newBuyer(1000) // 10.00, needs 30.00
		seller := newSeller(0)
		item := newForSaleItem(1500, 5)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Rollback", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, buyerID).Return(buyer, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, sellerID).Return(seller, nil)

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 2)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var detailed *errs.InsufficientFundsError
		assert.True(t, errors.As(err, &detailed))
		assert.Equal(t, buyerID, detailed.UserID)
		assert.Equal(t, "30.00", detailed.Required)
		assert.Equal(t, "10.00", detailed.CurrBalance)

		// Nothing was written and no balance moved
		assert.Equal(t, int64(1000), buyer.Balance())
		assert.Equal(t, int64(0), seller.Balance())
		assert.Equal(t, 5, item.Quantity)
		mockUsers.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)

		mockUow.AssertExpectations(t)
	})

	t.Run("should reject oversell before touching user rows", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		item := newForSaleItem(1000, 2)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Rollback", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 5)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)

		var detailed *errs.InsufficientStockError
		assert.True(t, errors.As(err, &detailed))
		assert.Equal(t, itemID, detailed.ItemID)
		assert.Equal(t, 5, detailed.Requested)
		assert.Equal(t, 2, detailed.Available)

		mockUsers.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)

		mockUow.AssertExpectations(t)
	})

	t.Run("should reject purchase of own item", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		item := newForSaleItem(1000, 5)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Rollback", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act: the seller tries to buy their own listing
		txn, err := engine.Purchase(ctx, sellerID, itemID, 1)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrSelfPurchase)

		mockUow.AssertExpectations(t)
	})

	t.Run("should reject purchase of unavailable item", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockItems := new(persistence.MockItemRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		item := newForSaleItem(1000, 5)
		item.Status = entity.StatusRemoved

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(new(persistence.MockUserRepository))
		mockUow.On("Rollback", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		mockLogger.On("Warn", "Purchase attempt on unavailable item", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 1)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrItemUnavailable)

		mockUow.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject invalid arguments without opening a transaction", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		testCases := []struct {
			name     string
			buyerID  uint64
			itemID   uint64
			quantity int
			expected error
		}{
			{"zero buyer ID", 0, itemID, 1, errs.ErrInvalidUserID},
			{"zero item ID", buyerID, 0, 1, errs.ErrItemNotFound},
			{"zero quantity", buyerID, itemID, 0, errs.ErrInvalidQuantity},
			{"negative quantity", buyerID, itemID, -3, errs.ErrInvalidQuantity},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Act
				txn, err := engine.Purchase(ctx, tc.buyerID, tc.itemID, tc.quantity)

				// Assert
				assert.Nil(t, txn)
				assert.ErrorIs(t, err, tc.expected)
			})
		}

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should roll back when a write fails mid-purchase", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database write error")

		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		buyer := newBuyer(10000)
		seller := newSeller(0)
		item := newForSaleItem(1000, 5)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Rollback", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, buyerID).Return(buyer, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, sellerID).Return(seller, nil)
		mockUsers.On("UpdateBalance", txCtx, buyer).Return(dbError)

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 1)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, txn)

		var purchaseErr *errs.PurchaseError
		assert.True(t, errors.As(err, &purchaseErr))
		assert.Equal(t, "failed to debit buyer", purchaseErr.Reason)
		assert.ErrorIs(t, err, dbError)

		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
		mockUow.AssertExpectations(t)
	})

	t.Run("should lock user rows in ascending ID order", func(t *testing.T) {
		// Arrange: seller has the lower ID, so it must be locked first
		lowSellerID := uint64(3)
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockItems := new(persistence.MockItemRepository)
		mockTxns := new(persistence.MockTransactionRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		buyer := newBuyer(10000)
		seller := &entity.User{ID: lowSellerID, Username: "seller"}
		item := newForSaleItem(1000, 5)
		item.SellerUserID = lowSellerID

		var lockOrder []uint64

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Items", txCtx).Return(mockItems)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Transactions", txCtx).Return(mockTxns)
		mockUow.On("Commit", txCtx).Return(nil)

		mockItems.On("GetByIDForUpdate", txCtx, itemID).Return(item, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, lowSellerID).Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args.Get(1).(uint64))
		}).Return(seller, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, buyerID).Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args.Get(1).(uint64))
		}).Return(buyer, nil)
		mockUsers.On("UpdateBalance", txCtx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockItems.On("Update", txCtx, item).Return(nil)
		mockTxns.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		mockLogger.On("Info", "Purchase completed", mock.AnythingOfType("map[string]interface {}")).Return()

		engine := NewEngine(mockUow, mockTimeProvider, mockLogger)

		// Act
		txn, err := engine.Purchase(ctx, buyerID, itemID, 1)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, txn)
		assert.Equal(t, []uint64{lowSellerID, buyerID}, lockOrder)
		assert.Equal(t, buyerID, txn.BuyerUserID)
		assert.Equal(t, lowSellerID, txn.SellerUserID)
		assert.Equal(t, "90.00", buyer.FormattedBalance())
		assert.Equal(t, "10.00", seller.FormattedBalance())
	})
}
