package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	reportingUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/reporting"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles analytics dashboard requests
type DashboardHandler struct {
	reportingService *reportingUseCase.Service
	logger           coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(reportingService *reportingUseCase.Service, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		reportingService: reportingService,
		logger:           logger,
	}
}

// viewFilter builds a reporting filter from the caller and the view query
// parameter. The default "all" view is not restricted to the caller.
func viewFilter(c *gin.Context) persistence.ViewFilter {
	view := c.DefaultQuery("view", persistence.ViewAll)
	switch view {
	case persistence.ViewBuyer, persistence.ViewSeller, persistence.ViewBoth:
		userID, _ := middleware.CurrentUserID(c)
		return persistence.ViewFilter{UserID: userID, View: view}
	default:
		return persistence.ViewFilter{View: persistence.ViewAll}
	}
}

// Summary handles the GET /dashboard/summary endpoint
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.reportingService.GetSummary(c.Request.Context(), viewFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardSummaryResponse(summary))
}

// SalesOverTime handles the GET /dashboard/sales-over-time endpoint
func (h *DashboardHandler) SalesOverTime(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	series, err := h.reportingService.SalesOverTime(c.Request.Context(), days, viewFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTimePointResponses(series))
}

// SalesByCategory handles the GET /dashboard/categories endpoint
func (h *DashboardHandler) SalesByCategory(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	breakdown, err := h.reportingService.SalesByCategory(c.Request.Context(), days, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryBreakdownResponses(breakdown))
}

// TopProducts handles the GET /dashboard/top-products endpoint
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	products, err := h.reportingService.TopProducts(c.Request.Context(), days, limit, viewFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTopProductResponses(products))
}
