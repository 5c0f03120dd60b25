package persistence

import (
	"context"
)

// UnitOfWork coordinates reads and writes across repositories inside one
// atomic database transaction. Begin returns a derived context carrying the
// transaction; repositories obtained with that context operate inside it,
// including row-level locks taken via the ForUpdate accessors.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Users returns a user repository bound to the current transaction
	Users(ctx context.Context) UserRepository

	// Items returns an item repository bound to the current transaction
	Items(ctx context.Context) ItemRepository

	// Transactions returns a transaction repository bound to the current transaction
	Transactions(ctx context.Context) TransactionRepository

	// Deposits returns a deposit repository bound to the current transaction
	Deposits(ctx context.Context) DepositRepository
}
