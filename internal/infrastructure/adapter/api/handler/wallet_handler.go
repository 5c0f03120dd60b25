package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
	walletUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/wallet"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet balance, deposit and transfer requests
type WalletHandler struct {
	walletService *walletUseCase.Service
	userService   *userUseCase.UseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	walletService *walletUseCase.Service,
	userService *userUseCase.UseCase,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		userService:   userService,
		logger:        logger,
	}
}

// GetBalance handles the GET /wallet/balance endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	balance, err := h.userService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	})
}

// Deposit handles the POST /wallet/deposit endpoint
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	deposit, err := h.walletService.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDepositResponse(deposit))
}

// Transfer handles the POST /wallet/transfer endpoint
func (h *WalletHandler) Transfer(c *gin.Context) {
	senderID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	newBalance, err := h.walletService.Transfer(c.Request.Context(), senderID, req.ReceiverUserID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		SenderUserID:   senderID,
		ReceiverUserID: req.ReceiverUserID,
		Amount:         req.Amount,
		NewBalance:     newBalance,
	})
}

// ListDeposits handles the GET /wallet/deposits endpoint
func (h *WalletHandler) ListDeposits(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	deposits, err := h.walletService.ListDeposits(c.Request.Context(), userID, skip, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDepositResponses(deposits))
}
