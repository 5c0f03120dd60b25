package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	purchaseUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/purchase"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase and transaction-history requests
type PurchaseHandler struct {
	purchaseEngine *purchaseUseCase.Engine
	userService    *userUseCase.UseCase
	logger         coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(
	purchaseEngine *purchaseUseCase.Engine,
	userService *userUseCase.UseCase,
	logger coreport.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseEngine: purchaseEngine,
		userService:    userService,
		logger:         logger,
	}
}

// Purchase handles the POST /transactions/purchase endpoint
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	buyerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	txn, err := h.purchaseEngine.Purchase(c.Request.Context(), buyerID, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// List handles the GET /transactions endpoint
func (h *PurchaseHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	txns, err := h.userService.ListTransactions(c.Request.Context(), userID, skip, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}

// Get handles the GET /transactions/:transactionId endpoint
func (h *PurchaseHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	transactionID, err := strconv.ParseUint(c.Param("transactionId"), 10, 64)
	if err != nil || transactionID == 0 {
		respondBadRequest(c, "Invalid transaction ID format")
		return
	}

	detail, err := h.userService.GetTransactionDetail(c.Request.Context(), transactionID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionDetailResponse(detail))
}
