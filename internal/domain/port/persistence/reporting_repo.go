package persistence

import (
	"context"
	"time"
)

// Dashboard view filters. "all" considers every transaction; the others
// restrict to the given user's side of the trade.
const (
	ViewAll    = "all"
	ViewBuyer  = "buyer"
	ViewSeller = "seller"
	ViewBoth   = "both"
)

// ViewFilter restricts reporting queries to one user's perspective
type ViewFilter struct {
	UserID uint64
	View   string // all | buyer | seller | both
}

// SalesTotals aggregates revenue and order count over a window
type SalesTotals struct {
	RevenueCents int64
	Orders       int64
}

// DailySales is one day's bucket in a sales time series
type DailySales struct {
	Day          time.Time
	RevenueCents int64
	Orders       int64
}

// CategorySales aggregates sales per item category
type CategorySales struct {
	Category     string
	RevenueCents int64
	UnitsSold    int64
}

// ProductSales aggregates sales per item
type ProductSales struct {
	ItemID       uint64
	Name         string
	UnitsSold    int64
	RevenueCents int64
}

// ReportingRepository defines read-only aggregation queries over the ledger.
// These carry no invariant risk; they never mutate rows.
type ReportingRepository interface {
	// TotalsBetween sums revenue and orders in [from, to)
	TotalsBetween(ctx context.Context, from, to time.Time, filter ViewFilter) (SalesTotals, error)

	// SalesByDay returns daily buckets in [from, to), sparse (missing days
	// have no bucket)
	SalesByDay(ctx context.Context, from, to time.Time, filter ViewFilter) ([]DailySales, error)

	// SalesByCategory returns per-category totals in [from, to), highest
	// revenue first
	SalesByCategory(ctx context.Context, from, to time.Time, limit int) ([]CategorySales, error)

	// TopProducts returns the best-selling items in [from, to) by units sold
	TopProducts(ctx context.Context, from, to time.Time, filter ViewFilter, limit int) ([]ProductSales, error)

	// DistinctBuyers counts distinct buyers who purchased from the seller
	DistinctBuyers(ctx context.Context, sellerID uint64) (int64, error)

	// TotalUsers counts all registered users
	TotalUsers(ctx context.Context) (int64, error)
}
