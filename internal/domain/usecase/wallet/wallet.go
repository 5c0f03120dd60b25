package wallet

import (
	"context"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
)

// Service implements the wallet deposit and balance transfer engines
type Service struct {
	uow          persistence.UnitOfWork
	depositRepo  persistence.DepositRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new wallet service
func NewService(
	uow persistence.UnitOfWork,
	depositRepo persistence.DepositRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		depositRepo:  depositRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Deposit credits the user's balance and appends an immutable deposit record
// in one atomic unit of work.
func (s *Service) Deposit(ctx context.Context, userID uint64, amount string) (*entity.Deposit, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	cents, err := entity.ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin deposit: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	users := s.uow.Users(txCtx)
	user, err := users.GetByIDForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}

	user.Credit(cents, s.timeProvider)
	if err := users.UpdateBalance(txCtx, user); err != nil {
		return nil, err
	}

	deposit := &entity.Deposit{
		UserID:      userID,
		AmountCents: cents,
		DepositTime: s.timeProvider.Now(),
	}
	if err := s.uow.Deposits(txCtx).Create(txCtx, deposit); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	s.logger.Info("Wallet deposit completed", map[string]any{
		"deposit_id":  deposit.ID,
		"user_id":     userID,
		"amount":      deposit.FormattedAmount(),
		"new_balance": user.FormattedBalance(),
	})

	return deposit, nil
}

// Transfer moves funds between two users atomically and returns the sender's
// new balance. Both user rows are locked in ascending ID order. No ledger row
// is written for transfers.
func (s *Service) Transfer(ctx context.Context, senderID, receiverID uint64, amount string) (string, error) {
	if senderID == 0 || receiverID == 0 {
		return "", errs.ErrInvalidUserID
	}
	if senderID == receiverID {
		return "", errs.ErrSelfTransfer
	}

	cents, err := entity.ParsePositiveAmount(amount)
	if err != nil {
		return "", err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transfer: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	users := s.uow.Users(txCtx)

	first, second := senderID, receiverID
	if receiverID < senderID {
		first, second = receiverID, senderID
	}

	firstUser, err := users.GetByIDForUpdate(txCtx, first)
	if err != nil {
		return "", err
	}
	secondUser, err := users.GetByIDForUpdate(txCtx, second)
	if err != nil {
		return "", err
	}

	sender, receiver := firstUser, secondUser
	if firstUser.ID != senderID {
		sender, receiver = secondUser, firstUser
	}

	if !sender.CanDeduct(cents) {
		return "", errs.NewInsufficientFundsError(senderID, entity.CentsToString(cents), sender.FormattedBalance())
	}

	if err := sender.Debit(cents, s.timeProvider); err != nil {
		return "", err
	}
	receiver.Credit(cents, s.timeProvider)

	if err := users.UpdateBalance(txCtx, sender); err != nil {
		return "", err
	}
	if err := users.UpdateBalance(txCtx, receiver); err != nil {
		return "", err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return "", err
	}
	committed = true

	s.logger.Info("Balance transfer completed", map[string]any{
		"sender_id":      senderID,
		"receiver_id":    receiverID,
		"amount":         entity.CentsToString(cents),
		"sender_balance": sender.FormattedBalance(),
	})

	return sender.FormattedBalance(), nil
}

// ListDeposits returns the user's deposit history, newest first
func (s *Service) ListDeposits(ctx context.Context, userID uint64, skip, limit int) ([]*entity.Deposit, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.depositRepo.ListByUser(ctx, userID, skip, limit)
}

// SearchDeposits returns deposits matching the filter
func (s *Service) SearchDeposits(ctx context.Context, filter persistence.DepositSearchFilter) ([]*entity.Deposit, error) {
	return s.depositRepo.Search(ctx, filter)
}
