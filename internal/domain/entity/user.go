package entity

import (
	"time"

	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
)

// UserRole identifies the authorization level of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a marketplace account with a wallet
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	balance      int64 // cash balance in cents, never negative (private)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with a zero balance
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" || email == "" {
		return nil, errs.ErrAuthenticationFailed
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		balance:      0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current cash balance in cents
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return CentsToString(u.balance)
}

// SetBalance updates the balance directly (for repository hydration)
func (u *User) SetBalance(cents int64) {
	u.balance = cents
}

// CanDeduct reports whether the user has enough balance for a deduction
func (u *User) CanDeduct(cents int64) bool {
	return u.balance >= cents
}

// Credit adds the amount to the balance
func (u *User) Credit(cents int64, timeProvider coreport.TimeProvider) {
	u.balance += cents
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance.
// Returns ErrInsufficientFunds if the balance would go negative.
func (u *User) Debit(cents int64, timeProvider coreport.TimeProvider) error {
	if u.balance < cents {
		return errs.ErrInsufficientFunds
	}
	u.balance -= cents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
