package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ReportingRepository implements read-only aggregation queries over the
// transaction ledger using GORM
type ReportingRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReportingRepository creates a new ReportingRepository instance
func NewReportingRepository(db *gorm.DB, logger coreport.Logger) *ReportingRepository {
	return &ReportingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReportingRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// windowQuery scopes a transactions query to [from, to) and the view filter
func (r *ReportingRepository) windowQuery(ctx context.Context, from, to time.Time, filter persistence.ViewFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("transaction_time >= ? AND transaction_time < ?", from, to)

	if filter.UserID == 0 {
		return query
	}

	switch filter.View {
	case persistence.ViewBuyer:
		query = query.Where("buyer_user_id = ?", filter.UserID)
	case persistence.ViewSeller:
		query = query.Where("seller_user_id = ?", filter.UserID)
	case persistence.ViewBoth:
		query = query.Where("buyer_user_id = ? OR seller_user_id = ?", filter.UserID, filter.UserID)
	}

	return query
}

// TotalsBetween sums revenue and orders in [from, to)
func (r *ReportingRepository) TotalsBetween(ctx context.Context, from, to time.Time, filter persistence.ViewFilter) (persistence.SalesTotals, error) {
	var row struct {
		Revenue int64
		Orders  int64
	}
	err := r.windowQuery(ctx, from, to, filter).
		Select("COALESCE(SUM(total_amount_cents), 0) AS revenue, COUNT(*) AS orders").
		Scan(&row).Error
	if err != nil {
		return persistence.SalesTotals{}, r.handleDatabaseError("summing sales", err)
	}

	return persistence.SalesTotals{
		RevenueCents: row.Revenue,
		Orders:       row.Orders,
	}, nil
}

// SalesByDay returns daily buckets in [from, to); days without sales are absent
func (r *ReportingRepository) SalesByDay(ctx context.Context, from, to time.Time, filter persistence.ViewFilter) ([]persistence.DailySales, error) {
	var rows []struct {
		Day     time.Time
		Revenue int64
		Orders  int64
	}
	err := r.windowQuery(ctx, from, to, filter).
		Select("DATE_TRUNC('day', transaction_time) AS day, COALESCE(SUM(total_amount_cents), 0) AS revenue, COUNT(*) AS orders").
		Group("day").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("bucketing daily sales", err)
	}

	buckets := make([]persistence.DailySales, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, persistence.DailySales{
			Day:          row.Day,
			RevenueCents: row.Revenue,
			Orders:       row.Orders,
		})
	}
	return buckets, nil
}

// SalesByCategory returns per-category totals in [from, to), highest revenue first
func (r *ReportingRepository) SalesByCategory(ctx context.Context, from, to time.Time, limit int) ([]persistence.CategorySales, error) {
	var rows []struct {
		Category string
		Revenue  int64
		Units    int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Joins("JOIN items ON items.id = transactions.item_id").
		Where("transactions.transaction_time >= ? AND transactions.transaction_time < ?", from, to).
		Select("items.category AS category, COALESCE(SUM(transactions.total_amount_cents), 0) AS revenue, COALESCE(SUM(transactions.quantity_purchased), 0) AS units").
		Group("items.category").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating category sales", err)
	}

	sales := make([]persistence.CategorySales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, persistence.CategorySales{
			Category:     row.Category,
			RevenueCents: row.Revenue,
			UnitsSold:    row.Units,
		})
	}
	return sales, nil
}

// TopProducts returns the best-selling items in [from, to) by units sold
func (r *ReportingRepository) TopProducts(ctx context.Context, from, to time.Time, filter persistence.ViewFilter, limit int) ([]persistence.ProductSales, error) {
	var rows []struct {
		ItemID  uint64
		Name    string
		Units   int64
		Revenue int64
	}
	err := r.windowQuery(ctx, from, to, filter).
		Joins("JOIN items ON items.id = transactions.item_id").
		Select("items.id AS item_id, items.name AS name, COALESCE(SUM(transactions.quantity_purchased), 0) AS units, COALESCE(SUM(transactions.total_amount_cents), 0) AS revenue").
		Group("items.id, items.name").
		Order("units DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("aggregating top products", err)
	}

	products := make([]persistence.ProductSales, 0, len(rows))
	for _, row := range rows {
		products = append(products, persistence.ProductSales{
			ItemID:       row.ItemID,
			Name:         row.Name,
			UnitsSold:    row.Units,
			RevenueCents: row.Revenue,
		})
	}
	return products, nil
}

// DistinctBuyers counts distinct buyers who purchased from the seller
func (r *ReportingRepository) DistinctBuyers(ctx context.Context, sellerID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("seller_user_id = ?", sellerID).
		Distinct("buyer_user_id").
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting distinct buyers", err)
	}
	return count, nil
}

// TotalUsers counts all registered users
func (r *ReportingRepository) TotalUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting users", err)
	}
	return count, nil
}
