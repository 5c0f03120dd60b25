package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// httpStatus maps a domain error to its HTTP status code
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrUserNotFound),
		errors.Is(err, domainerr.ErrItemNotFound),
		errors.Is(err, domainerr.ErrTransactionNotFound),
		errors.Is(err, domainerr.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden

	case errors.Is(err, domainerr.ErrAuthenticationFailed):
		return http.StatusUnauthorized

	case errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrConflict):
		return http.StatusConflict

	case errors.Is(err, domainerr.ErrInsufficientFunds),
		errors.Is(err, domainerr.ErrInsufficientStock),
		errors.Is(err, domainerr.ErrItemUnavailable),
		errors.Is(err, domainerr.ErrSelfPurchase),
		errors.Is(err, domainerr.ErrSelfTransfer),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidQuantity),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidState),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error response for a domain error.
// Server-side failures are logged with their real cause; the client only sees
// a generic message.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := httpStatus(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 for malformed request payloads
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidState),
		Message: message,
	})
}
