package handler

import (
	"net/http"
	"strconv"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	domainerr "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
	walletUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/wallet"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin-only search endpoints
type AdminHandler struct {
	userService   *userUseCase.UseCase
	walletService *walletUseCase.Service
	logger        coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	userService *userUseCase.UseCase,
	walletService *walletUseCase.Service,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		userService:   userService,
		walletService: walletService,
		logger:        logger,
	}
}

// requireAdmin verifies the caller holds the admin role
func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return false
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return false
	}
	if !user.IsAdmin() {
		respondError(c, h.logger, domainerr.ErrForbidden)
		return false
	}

	return true
}

// SearchUsers handles the GET /admin/users endpoint
func (h *AdminHandler) SearchUsers(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	filter := persistence.UserSearchFilter{
		Username: c.Query("username"),
		Email:    c.Query("email"),
	}
	if raw := c.Query("minBalance"); raw != "" {
		if cents, err := entity.ParseAmount(raw); err == nil {
			filter.MinBalanceCents = &cents
		}
	}
	if raw := c.Query("maxBalance"); raw != "" {
		if cents, err := entity.ParseAmount(raw); err == nil {
			filter.MaxBalanceCents = &cents
		}
	}

	users, err := h.userService.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	c.JSON(http.StatusOK, responses)
}

// SearchDeposits handles the GET /admin/deposits endpoint
func (h *AdminHandler) SearchDeposits(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	filter := persistence.DepositSearchFilter{}
	if raw := c.Query("userId"); raw != "" {
		if userID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.UserID = userID
		}
	}
	if raw := c.Query("minAmount"); raw != "" {
		if cents, err := entity.ParseAmount(raw); err == nil {
			filter.MinAmountCents = &cents
		}
	}
	if raw := c.Query("maxAmount"); raw != "" {
		if cents, err := entity.ParseAmount(raw); err == nil {
			filter.MaxAmountCents = &cents
		}
	}

	deposits, err := h.walletService.SearchDeposits(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDepositResponses(deposits))
}
