package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/bazaarhq/marketplace/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for error mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeItem represents the item entity
	EntityTypeItem EntityType = "item"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
	// EntityTypeDeposit represents the deposit entity
	EntityTypeDeposit EntityType = "deposit"
	// EntityTypeToken represents the user token entity
	EntityTypeToken EntityType = "user_token"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Lock contention surfaces as a retryable conflict
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return domainErr.ErrConflict

	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if strings.Contains(errMsg, "username") || strings.Contains(errMsg, "email") {
			return domainErr.ErrDuplicateUser
		}
		return domainErr.ErrConstraintViolation

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return fmt.Errorf("%w: %s lost database connection", domainErr.ErrStorage, operation)

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrStorage, operation)

	default:
		return fmt.Errorf("%w: %s failed", domainErr.ErrStorage, operation)
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeItem:
			return domainErr.ErrItemNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// MapUserNotFoundError maps database errors to user not found errors
func (m *ErrorMapper) MapUserNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeUser)
}

// MapItemNotFoundError maps database errors to item not found errors
func (m *ErrorMapper) MapItemNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeItem)
}

// MapTransactionNotFoundError maps database errors to transaction not found errors
func (m *ErrorMapper) MapTransactionNotFoundError(err error) error {
	return m.MapEntityNotFoundError(err, EntityTypeTransaction)
}
