package catalog

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
)

// Browsing defaults
const (
	DefaultPageSize   = 100
	DefaultRecentDays = 7
)

// Page is a paginated slice of listings with the pre-pagination total
type Page struct {
	Items []*entity.Item
	Total int64
	Skip  int
	Limit int
}

// Service implements read-only catalog browsing and search over listings
type Service struct {
	itemRepo persistence.ItemRepository
	logger   coreport.Logger
}

// NewService creates a new catalog service
func NewService(itemRepo persistence.ItemRepository, logger coreport.Logger) *Service {
	return &Service{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Browse returns for-sale items with pagination, optional category filter and
// sorting by listed_at, price or name.
func (s *Service) Browse(ctx context.Context, filter persistence.ItemListFilter) (*Page, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	switch filter.SortBy {
	case "price", "name", "listed_at":
	default:
		filter.SortBy = "listed_at"
	}
	if filter.SortOrder != "asc" {
		filter.SortOrder = "desc"
	}

	items, total, err := s.itemRepo.ListForSale(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &Page{
		Items: items,
		Total: total,
		Skip:  filter.Skip,
		Limit: filter.Limit,
	}, nil
}

// Featured returns the highest-priced for-sale items
func (s *Service) Featured(ctx context.Context, limit int) ([]*entity.Item, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.itemRepo.ListFeatured(ctx, limit)
}

// Recent returns for-sale items listed within the last days
func (s *Service) Recent(ctx context.Context, days, limit int) ([]*entity.Item, error) {
	if days <= 0 {
		days = DefaultRecentDays
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return s.itemRepo.ListRecent(ctx, days, limit)
}

// GetForSale returns a single listing only while it is for sale
func (s *Service) GetForSale(ctx context.Context, itemID uint64) (*entity.Item, error) {
	if itemID == 0 {
		return nil, errs.ErrItemNotFound
	}
	return s.itemRepo.GetForSaleByID(ctx, itemID)
}

// Categories returns the distinct categories of for-sale items with counts
func (s *Service) Categories(ctx context.Context) ([]persistence.CategoryCount, error) {
	return s.itemRepo.Categories(ctx)
}

// Search returns items matching the filter
func (s *Service) Search(ctx context.Context, filter persistence.ItemSearchFilter) ([]*entity.Item, error) {
	return s.itemRepo.Search(ctx, filter)
}
