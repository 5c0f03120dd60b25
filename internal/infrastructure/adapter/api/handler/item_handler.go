package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	itemUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/item"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ItemHandler handles seller-side item lifecycle requests
type ItemHandler struct {
	itemManager *itemUseCase.Manager
	logger      coreport.Logger
}

// NewItemHandler creates a new item handler instance
func NewItemHandler(itemManager *itemUseCase.Manager, logger coreport.Logger) *ItemHandler {
	return &ItemHandler{
		itemManager: itemManager,
		logger:      logger,
	}
}

// parseItemID extracts the item ID path parameter
func parseItemID(c *gin.Context) (uint64, bool) {
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil || itemID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrItemNotFound),
			Message: "Invalid item ID format",
		})
		return 0, false
	}
	return itemID, true
}

// Create handles the POST /items endpoint
func (h *ItemHandler) Create(c *gin.Context) {
	sellerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.itemManager.Create(c.Request.Context(), sellerID, itemUseCase.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewItemResponse(item))
}

// Update handles the PATCH /items/:itemId endpoint
func (h *ItemHandler) Update(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, ok := parseItemID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.itemManager.Update(c.Request.Context(), itemID, callerID, req.ToPatch())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Remove handles the DELETE /items/:itemId endpoint
func (h *ItemHandler) Remove(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, ok := parseItemID(c)
	if !ok {
		return
	}

	if err := h.itemManager.Remove(c.Request.Context(), itemID, callerID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMine handles the GET /items/mine endpoint
func (h *ItemHandler) ListMine(c *gin.Context) {
	sellerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.itemManager.ListBySeller(c.Request.Context(), sellerID, skip, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

// Get handles the GET /items/:itemId endpoint (any status, for the owner view)
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}

	item, err := h.itemManager.Get(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}
