package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
)

const (
	// SummaryWindowDays is the rolling window the dashboard summary covers
	SummaryWindowDays = 30

	DefaultTopProducts = 5
	DefaultCategories  = 10
)

// Summary is the dashboard headline: totals for the last 30 days compared
// against the 30 days before that.
type Summary struct {
	TotalRevenue      string
	TotalOrders       int64
	AverageOrderValue string
	TotalCustomers    int64
	RevenueGrowthPct  string
	OrdersGrowthPct   string
}

// TimePoint is one day in a zero-filled sales series
type TimePoint struct {
	Day     time.Time
	Revenue string
	Orders  int64
}

// CategoryBreakdown is one category's share of revenue in a window
type CategoryBreakdown struct {
	Category  string
	Revenue   string
	UnitsSold int64
	SharePct  string
}

// TopProduct is one entry in the best-sellers list
type TopProduct struct {
	ItemID    uint64
	Name      string
	UnitsSold int64
	Revenue   string
}

// Service implements the analytics dashboard over the transaction ledger
type Service struct {
	reportingRepo persistence.ReportingRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a new reporting service
func NewService(
	reportingRepo persistence.ReportingRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		reportingRepo: reportingRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// GetSummary computes the 30-day dashboard summary. The three aggregation
// queries are independent and run concurrently.
func (s *Service) GetSummary(ctx context.Context, filter persistence.ViewFilter) (*Summary, error) {
	now := s.timeProvider.Now()
	windowStart := now.AddDate(0, 0, -SummaryWindowDays)
	previousStart := now.AddDate(0, 0, -2*SummaryWindowDays)

	var (
		current   persistence.SalesTotals
		previous  persistence.SalesTotals
		customers int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.reportingRepo.TotalsBetween(gCtx, windowStart, now, filter)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.reportingRepo.TotalsBetween(gCtx, previousStart, windowStart, filter)
		return err
	})
	g.Go(func() error {
		var err error
		if filter.View == persistence.ViewSeller && filter.UserID != 0 {
			customers, err = s.reportingRepo.DistinctBuyers(gCtx, filter.UserID)
		} else {
			customers, err = s.reportingRepo.TotalUsers(gCtx)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	avgOrder := decimal.Zero
	if current.Orders > 0 {
		avgOrder = decimal.New(current.RevenueCents, -2).
			Div(decimal.NewFromInt(current.Orders)).
			Round(2)
	}

	return &Summary{
		TotalRevenue:      entity.CentsToString(current.RevenueCents),
		TotalOrders:       current.Orders,
		AverageOrderValue: avgOrder.StringFixed(2),
		TotalCustomers:    customers,
		RevenueGrowthPct:  growthPct(previous.RevenueCents, current.RevenueCents),
		OrdersGrowthPct:   growthPct(previous.Orders, current.Orders),
	}, nil
}

// growthPct is the percent change from previous to current, rounded to two
// decimals. A zero baseline reports 100% growth when current is positive and
// 0% otherwise.
func growthPct(previous, current int64) string {
	if previous == 0 {
		if current > 0 {
			return "100.00"
		}
		return "0.00"
	}
	return decimal.NewFromInt(current - previous).
		Div(decimal.NewFromInt(previous)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		StringFixed(2)
}

// SalesOverTime returns one point per day for the last days, oldest first.
// Days without sales are filled with zeroes.
func (s *Service) SalesOverTime(ctx context.Context, days int, filter persistence.ViewFilter) ([]TimePoint, error) {
	if days <= 0 {
		days = SummaryWindowDays
	}

	now := s.timeProvider.Now()
	from := truncateToDay(now.AddDate(0, 0, -(days - 1)))

	buckets, err := s.reportingRepo.SalesByDay(ctx, from, now, filter)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]persistence.DailySales, len(buckets))
	for _, b := range buckets {
		byDay[truncateToDay(b.Day)] = b
	}

	series := make([]TimePoint, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		point := TimePoint{Day: day, Revenue: entity.CentsToString(0)}
		if b, ok := byDay[day]; ok {
			point.Revenue = entity.CentsToString(b.RevenueCents)
			point.Orders = b.Orders
		}
		series = append(series, point)
	}

	return series, nil
}

// SalesByCategory returns each category's revenue and share of the window's
// total, highest revenue first.
func (s *Service) SalesByCategory(ctx context.Context, days, limit int) ([]CategoryBreakdown, error) {
	if days <= 0 {
		days = SummaryWindowDays
	}
	if limit <= 0 {
		limit = DefaultCategories
	}

	now := s.timeProvider.Now()
	from := now.AddDate(0, 0, -days)

	rows, err := s.reportingRepo.SalesByCategory(ctx, from, now, limit)
	if err != nil {
		return nil, err
	}

	var totalCents int64
	for _, r := range rows {
		totalCents += r.RevenueCents
	}

	breakdown := make([]CategoryBreakdown, 0, len(rows))
	for _, r := range rows {
		share := "0.00"
		if totalCents > 0 {
			share = decimal.NewFromInt(r.RevenueCents).
				Div(decimal.NewFromInt(totalCents)).
				Mul(decimal.NewFromInt(100)).
				Round(2).
				StringFixed(2)
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category:  r.Category,
			Revenue:   entity.CentsToString(r.RevenueCents),
			UnitsSold: r.UnitsSold,
			SharePct:  share,
		})
	}

	return breakdown, nil
}

// TopProducts returns the best-selling items by units sold in the window
func (s *Service) TopProducts(ctx context.Context, days, limit int, filter persistence.ViewFilter) ([]TopProduct, error) {
	if days <= 0 {
		days = SummaryWindowDays
	}
	if limit <= 0 {
		limit = DefaultTopProducts
	}

	now := s.timeProvider.Now()
	from := now.AddDate(0, 0, -days)

	rows, err := s.reportingRepo.TopProducts(ctx, from, now, filter, limit)
	if err != nil {
		return nil, err
	}

	products := make([]TopProduct, 0, len(rows))
	for _, r := range rows {
		products = append(products, TopProduct{
			ItemID:    r.ItemID,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
			Revenue:   entity.CentsToString(r.RevenueCents),
		})
	}

	return products, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
