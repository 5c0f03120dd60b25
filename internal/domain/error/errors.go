package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidQuantity      = 4003
	CodeInvalidUserID        = 4004
	CodeItemUnavailable      = 4005
	CodeInsufficientStock    = 4006
	CodeSelfPurchase         = 4007
	CodeSelfTransfer         = 4008
	CodeInvalidState         = 4009
	CodeConstraintViolation  = 4010
	CodeDuplicateUser        = 4011
	CodeAuthenticationFailed = 4012
	CodeForbidden            = 4030
	CodeUserNotFound         = 4040
	CodeItemNotFound         = 4041
	CodeTransactionNotFound  = 4042
	CodeNotFound             = 4043
	CodeConflict             = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorage        = 5001
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a buyer or sender lacks the balance to cover an operation
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when a monetary amount is non-positive or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidQuantity is returned when a quantity is non-positive
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrItemUnavailable is returned when the target item is not in the for_sale state
	ErrItemUnavailable = errors.New("item is not available for sale")

	// ErrInsufficientStock is returned when the requested quantity exceeds available stock
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")

	// ErrSelfPurchase is returned when a user attempts to purchase their own item
	ErrSelfPurchase = errors.New("cannot purchase your own item")

	// ErrSelfTransfer is returned when a user attempts to transfer funds to themselves
	ErrSelfTransfer = errors.New("cannot transfer funds to yourself")

	// ErrInvalidState is returned when an operation is not permitted in the entity's current lifecycle state
	ErrInvalidState = errors.New("operation not permitted in current state")

	// ErrForbidden is returned when the caller is not authorized for the target resource
	ErrForbidden = errors.New("not authorized for this resource")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when the requested item doesn't exist
	ErrItemNotFound = errors.New("item not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when the username or email is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrAuthenticationFailed is returned when credentials or tokens cannot be verified
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrConflict is returned when the atomic unit of work could not commit due to
	// contention; the whole operation is safe to retry from the top
	ErrConflict = errors.New("operation conflicted with a concurrent request")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrStorage is returned for unexpected persistence-layer failures
	ErrStorage = errors.New("storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrItemUnavailable):
		return CodeItemUnavailable
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrSelfPurchase):
		return CodeSelfPurchase
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrItemNotFound):
		return CodeItemNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrAuthenticationFailed):
		return CodeAuthenticationFailed
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	UserID      uint64
	Required    string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Required, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"required":        e.Required,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, required, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Required:    required,
		CurrBalance: currentBalance,
	}
}

// InsufficientStockError provides detailed error information for oversold purchases
type InsufficientStockError struct {
	ItemID    uint64
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: requested %d, available %d",
		e.ItemID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientStockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_stock",
		"item_id":    e.ItemID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientStock,
	}
}

// NewInsufficientStockError creates a new detailed insufficient stock error
func NewInsufficientStockError(itemID uint64, requested, available int) error {
	return &InsufficientStockError{
		ItemID:    itemID,
		Requested: requested,
		Available: available,
	}
}

// PurchaseError represents an error raised while executing a purchase
type PurchaseError struct {
	ItemID  uint64
	BuyerID uint64
	Reason  string
	Err     error
}

// Error implements the error interface for PurchaseError
func (e *PurchaseError) Error() string {
	return fmt.Sprintf("purchase of item %d by user %d failed: %s - %v",
		e.ItemID, e.BuyerID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "purchase_error",
		"item_id":    e.ItemID,
		"buyer_id":   e.BuyerID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPurchaseError creates a detailed purchase error
func NewPurchaseError(itemID, buyerID uint64, reason string, err error) error {
	return &PurchaseError{
		ItemID:  itemID,
		BuyerID: buyerID,
		Reason:  reason,
		Err:     err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsInsufficientStockError checks if the error is related to insufficient stock
func IsInsufficientStockError(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error is a retryable contention error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsAuthenticationError checks if the error is an authentication failure
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed)
}
