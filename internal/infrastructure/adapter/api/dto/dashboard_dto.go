package dto

import (
	"time"

	reportingUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/reporting"
)

// DashboardSummaryResponse represents the 30-day dashboard headline
type DashboardSummaryResponse struct {
	TotalRevenue      string `json:"totalRevenue"`
	TotalOrders       int64  `json:"totalOrders"`
	AverageOrderValue string `json:"averageOrderValue"`
	TotalCustomers    int64  `json:"totalCustomers"`
	RevenueGrowthPct  string `json:"revenueGrowthPct"`
	OrdersGrowthPct   string `json:"ordersGrowthPct"`
}

// TimePointResponse is one day in a sales time series
type TimePointResponse struct {
	Day     time.Time `json:"day"`
	Revenue string    `json:"revenue"`
	Orders  int64     `json:"orders"`
}

// CategoryBreakdownResponse is one category's share of revenue
type CategoryBreakdownResponse struct {
	Category  string `json:"category"`
	Revenue   string `json:"revenue"`
	UnitsSold int64  `json:"unitsSold"`
	SharePct  string `json:"sharePct"`
}

// TopProductResponse is one entry in the best-sellers list
type TopProductResponse struct {
	ItemID    uint64 `json:"itemId"`
	Name      string `json:"name"`
	UnitsSold int64  `json:"unitsSold"`
	Revenue   string `json:"revenue"`
}

// NewDashboardSummaryResponse maps a reporting summary
func NewDashboardSummaryResponse(summary *reportingUseCase.Summary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalRevenue:      summary.TotalRevenue,
		TotalOrders:       summary.TotalOrders,
		AverageOrderValue: summary.AverageOrderValue,
		TotalCustomers:    summary.TotalCustomers,
		RevenueGrowthPct:  summary.RevenueGrowthPct,
		OrdersGrowthPct:   summary.OrdersGrowthPct,
	}
}

// NewTimePointResponses maps a sales series
func NewTimePointResponses(series []reportingUseCase.TimePoint) []TimePointResponse {
	responses := make([]TimePointResponse, 0, len(series))
	for _, point := range series {
		responses = append(responses, TimePointResponse{
			Day:     point.Day,
			Revenue: point.Revenue,
			Orders:  point.Orders,
		})
	}
	return responses
}

// NewCategoryBreakdownResponses maps a category breakdown
func NewCategoryBreakdownResponses(breakdown []reportingUseCase.CategoryBreakdown) []CategoryBreakdownResponse {
	responses := make([]CategoryBreakdownResponse, 0, len(breakdown))
	for _, row := range breakdown {
		responses = append(responses, CategoryBreakdownResponse{
			Category:  row.Category,
			Revenue:   row.Revenue,
			UnitsSold: row.UnitsSold,
			SharePct:  row.SharePct,
		})
	}
	return responses
}

// NewTopProductResponses maps a best-sellers list
func NewTopProductResponses(products []reportingUseCase.TopProduct) []TopProductResponse {
	responses := make([]TopProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, TopProductResponse{
			ItemID:    product.ItemID,
			Name:      product.Name,
			UnitsSold: product.UnitsSold,
			Revenue:   product.Revenue,
		})
	}
	return responses
}
