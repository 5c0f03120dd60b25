package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	authUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/auth"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key holding the authenticated user's ID
const userIDKey = "auth_user_id"

// RequireAuth verifies the bearer token and stores the caller's user ID in the
// request context. Requests without a valid token are rejected with 401.
func RequireAuth(authService *authUseCase.Service, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrAuthenticationFailed),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		userID, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Authentication failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrAuthenticationFailed),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID set by RequireAuth
func CurrentUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
