package wallet

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

func TestService_Deposit(t *testing.T) {
	// Define fixed time for consistent testing
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	// Common test variables
	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), struct{}{})
	userID := uint64(123)

	t.Run("should credit balance and record deposit atomically", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockDeposits := new(persistence.MockDepositRepository)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user := &entity.User{ID: userID, Username: "alice"}
		user.SetBalance(10000) // 100.00

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Deposits", txCtx).Return(mockDeposits)
		mockUow.On("Commit", txCtx).Return(nil)

		mockUsers.On("GetByIDForUpdate", txCtx, userID).Return(user, nil)
		mockUsers.On("UpdateBalance", txCtx, user).Return(nil)
		mockDeposits.On("Create", txCtx, mock.AnythingOfType("*entity.Deposit")).Return(nil)

		mockLogger.On("Info", "Wallet deposit completed", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		deposit, err := service.Deposit(ctx, userID, "50.00")

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, deposit)
		assert.Equal(t, userID, deposit.UserID)
		assert.Equal(t, int64(5000), deposit.AmountCents)
		assert.Equal(t, fixedTime, deposit.DepositTime)
		assert.Equal(t, "150.00", user.FormattedBalance())

		mockUow.AssertNotCalled(t, "Rollback", mock.Anything)

		mockUow.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
		mockDeposits.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should reject invalid user ID", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		deposit, err := service.Deposit(ctx, 0, "50.00")

		// Assert
		assert.Nil(t, deposit)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		for _, amount := range []string{"0.00", "-10.00", "abc", "1.234"} {
			t.Run(amount, func(t *testing.T) {
				// Act
				deposit, err := service.Deposit(ctx, userID, amount)

				// Assert
				assert.Nil(t, deposit)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should roll back when the deposit record cannot be written", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database write error")

		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockDeposits := new(persistence.MockDepositRepository)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		user := &entity.User{ID: userID}
		user.SetBalance(10000)

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Deposits", txCtx).Return(mockDeposits)
		mockUow.On("Rollback", txCtx).Return(nil)

		mockUsers.On("GetByIDForUpdate", txCtx, userID).Return(user, nil)
		mockUsers.On("UpdateBalance", txCtx, user).Return(nil)
		mockDeposits.On("Create", txCtx, mock.AnythingOfType("*entity.Deposit")).Return(dbError)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		deposit, err := service.Deposit(ctx, userID, "50.00")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, deposit)
		assert.Equal(t, dbError, err)

		mockUow.AssertNotCalled(t, "Commit", mock.Anything)
		mockUow.AssertExpectations(t)
	})
}

func TestService_Transfer(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	ctx := context.Background()
	txCtx := context.WithValue(ctx, ctxKey("tx"), struct{}{})
	senderID := uint64(10)
	receiverID := uint64(20)

	t.Run("should move funds and return sender balance", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		sender := &entity.User{ID: senderID, Username: "alice"}
		sender.SetBalance(10000) // 100.00
		receiver := &entity.User{ID: receiverID, Username: "bob"}
		receiver.SetBalance(2000) // 20.00
		totalBefore := sender.Balance() + receiver.Balance()

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Commit", txCtx).Return(nil)

		// Rows are locked in ascending ID order: sender first here
		mockUsers.On("GetByIDForUpdate", txCtx, senderID).Return(sender, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, receiverID).Return(receiver, nil)
		mockUsers.On("UpdateBalance", txCtx, sender).Return(nil)
		mockUsers.On("UpdateBalance", txCtx, receiver).Return(nil)

		mockLogger.On("Info", "Balance transfer completed", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		newBalance, err := service.Transfer(ctx, senderID, receiverID, "30.00")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "70.00", newBalance)
		assert.Equal(t, "70.00", sender.FormattedBalance())
		assert.Equal(t, "50.00", receiver.FormattedBalance())
		assert.Equal(t, totalBefore, sender.Balance()+receiver.Balance())

		mockUow.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
		mockLogger.AssertExpectations(t)
	})

	t.Run("should resolve sender correctly when receiver has the lower ID", func(t *testing.T) {
		// Arrange
		lowReceiverID := uint64(2)

		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		mockTimeProvider.On("Now").Return(fixedTime)

		sender := &entity.User{ID: senderID, Username: "alice"}
		sender.SetBalance(10000)
		receiver := &entity.User{ID: lowReceiverID, Username: "bob"}

		var lockOrder []uint64

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Commit", txCtx).Return(nil)

		mockUsers.On("GetByIDForUpdate", txCtx, lowReceiverID).Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args.Get(1).(uint64))
		}).Return(receiver, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, senderID).Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args.Get(1).(uint64))
		}).Return(sender, nil)
		mockUsers.On("UpdateBalance", txCtx, mock.AnythingOfType("*entity.User")).Return(nil)

		mockLogger.On("Info", "Balance transfer completed", mock.AnythingOfType("map[string]interface {}")).Return()

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		newBalance, err := service.Transfer(ctx, senderID, lowReceiverID, "25.00")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, []uint64{lowReceiverID, senderID}, lockOrder)
		assert.Equal(t, "75.00", newBalance)
		assert.Equal(t, "75.00", sender.FormattedBalance())
		assert.Equal(t, "25.00", receiver.FormattedBalance())
	})

	t.Run("should reject self transfer", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		newBalance, err := service.Transfer(ctx, senderID, senderID, "10.00")

		// Assert
		assert.Empty(t, newBalance)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should reject transfer with insufficient funds and roll back", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockUsers := new(persistence.MockUserRepository)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		sender := &entity.User{ID: senderID}
		sender.SetBalance(500) // 5.00, needs 30.00
		receiver := &entity.User{ID: receiverID}

		mockUow.On("Begin", ctx).Return(txCtx, nil)
		mockUow.On("Users", txCtx).Return(mockUsers)
		mockUow.On("Rollback", txCtx).Return(nil)

		mockUsers.On("GetByIDForUpdate", txCtx, senderID).Return(sender, nil)
		mockUsers.On("GetByIDForUpdate", txCtx, receiverID).Return(receiver, nil)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		newBalance, err := service.Transfer(ctx, senderID, receiverID, "30.00")

		// Assert
		assert.Empty(t, newBalance)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var detailed *errs.InsufficientFundsError
		assert.True(t, errors.As(err, &detailed))
		assert.Equal(t, senderID, detailed.UserID)
		assert.Equal(t, "30.00", detailed.Required)
		assert.Equal(t, "5.00", detailed.CurrBalance)

		assert.Equal(t, int64(500), sender.Balance())
		assert.Equal(t, int64(0), receiver.Balance())
		mockUsers.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
		mockUow.AssertNotCalled(t, "Commit", mock.Anything)

		mockUow.AssertExpectations(t)
	})

	t.Run("should reject invalid user IDs", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		_, err := service.Transfer(ctx, 0, receiverID, "10.00")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = service.Transfer(ctx, senderID, 0, "10.00")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		mockUow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestService_ListDeposits(t *testing.T) {
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should return the user's deposits", func(t *testing.T) {
		// Arrange
		mockUow := new(persistence.MockUnitOfWork)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		deposits := []*entity.Deposit{
			{ID: 2, UserID: userID, AmountCents: 5000},
			{ID: 1, UserID: userID, AmountCents: 2500},
		}
		mockDepositRepo.On("ListByUser", ctx, userID, 0, 20).Return(deposits, nil)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		// Act
		result, err := service.ListDeposits(ctx, userID, 0, 20)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, deposits, result)

		mockDepositRepo.AssertExpectations(t)
	})

	t.Run("should reject invalid user ID", func(t *testing.T) {
		mockUow := new(persistence.MockUnitOfWork)
		mockDepositRepo := new(persistence.MockDepositRepository)
		mockTimeProvider := new(core.MockTimeProvider)
		mockLogger := new(core.MockLogger)

		service := NewService(mockUow, mockDepositRepo, mockTimeProvider, mockLogger)

		result, err := service.ListDeposits(ctx, 0, 0, 20)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
