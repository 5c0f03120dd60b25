package handler

import (
	"net/http"
	"strconv"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	catalogUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/catalog"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles public browsing and search requests
type CatalogHandler struct {
	catalogService *catalogUseCase.Service
	logger         coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalogService *catalogUseCase.Service, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Browse handles the GET /products endpoint
func (h *CatalogHandler) Browse(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	page, err := h.catalogService.Browse(c.Request.Context(), persistence.ItemListFilter{
		Category:  c.Query("category"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Skip:      skip,
		Limit:     limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ItemPageResponse{
		Items: dto.NewItemResponses(page.Items),
		Total: page.Total,
		Skip:  page.Skip,
		Limit: page.Limit,
	})
}

// Featured handles the GET /products/featured endpoint
func (h *CatalogHandler) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := h.catalogService.Featured(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

// Recent handles the GET /products/recent endpoint
func (h *CatalogHandler) Recent(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.catalogService.Recent(c.Request.Context(), days, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponses(items))
}

// Categories handles the GET /products/categories endpoint
func (h *CatalogHandler) Categories(c *gin.Context) {
	counts, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.CategoryResponse, 0, len(counts))
	for _, count := range counts {
		responses = append(responses, dto.CategoryResponse{
			Name:      count.Name,
			ItemCount: count.ItemCount,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// Get handles the GET /products/:itemId endpoint; only for-sale items are visible
func (h *CatalogHandler) Get(c *gin.Context) {
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.GetForSale(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponse(item))
}

// Search handles the GET /search/items endpoint
func (h *CatalogHandler) Search(c *gin.Context) {
	filter := persistence.ItemSearchFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if cents, err := entity.ParseAmount(raw); err == nil {
			filter.MinPriceCents = &cents
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if cents, err := entity.ParseAmount(raw); err == nil {
			filter.MaxPriceCents = &cents
		}
	}
	if raw := c.Query("status"); raw != "" {
		status := entity.ItemStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("sellerId"); raw != "" {
		if sellerID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.SellerID = &sellerID
		}
	}
	if raw := c.Query("minQuantity"); raw != "" {
		if qty, err := strconv.Atoi(raw); err == nil {
			filter.MinQuantity = &qty
		}
	}

	items, err := h.catalogService.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewItemResponses(items))
}
