package persistence

import (
	"context"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// ItemListFilter controls catalog listing queries
type ItemListFilter struct {
	Category  string // substring match, case-insensitive
	SortBy    string // listed_at | price | name
	SortOrder string // asc | desc
	Skip      int
	Limit     int
}

// ItemSearchFilter narrows an item search; nil/zero fields are ignored
type ItemSearchFilter struct {
	Name          string
	Category      string
	MinPriceCents *int64
	MaxPriceCents *int64
	Status        *entity.ItemStatus
	SellerID      *uint64
	MinQuantity   *int
}

// CategoryCount is a distinct category with its number of for-sale items
type CategoryCount struct {
	Name      string
	ItemCount int64
}

// ItemRepository defines persistence operations for item listings
type ItemRepository interface {
	// GetByID retrieves an item by ID regardless of status
	GetByID(ctx context.Context, id uint64) (*entity.Item, error)

	// GetByIDForUpdate retrieves an item by ID holding a row-level write lock.
	// Must be called inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Item, error)

	// GetForSaleByID retrieves an item only if it is currently for sale
	GetForSaleByID(ctx context.Context, id uint64) (*entity.Item, error)

	// Create persists a new listing and assigns its ID
	Create(ctx context.Context, item *entity.Item) error

	// Update persists all mutable fields of the listing
	Update(ctx context.Context, item *entity.Item) error

	// ListForSale returns for-sale items with stock, plus the total count
	// before pagination
	ListForSale(ctx context.Context, filter ItemListFilter) ([]*entity.Item, int64, error)

	// ListFeatured returns the highest-priced for-sale items
	ListFeatured(ctx context.Context, limit int) ([]*entity.Item, error)

	// ListRecent returns for-sale items listed within the last days
	ListRecent(ctx context.Context, days, limit int) ([]*entity.Item, error)

	// ListBySeller returns all of a seller's items regardless of status
	ListBySeller(ctx context.Context, sellerID uint64, skip, limit int) ([]*entity.Item, error)

	// ListBySellerAndStatus returns a seller's items in the given status
	ListBySellerAndStatus(ctx context.Context, sellerID uint64, status entity.ItemStatus) ([]*entity.Item, error)

	// ListPurchasedByUser returns items the user has bought at least once
	ListPurchasedByUser(ctx context.Context, userID uint64) ([]*entity.Item, error)

	// Categories returns distinct categories of for-sale items with counts
	Categories(ctx context.Context) ([]CategoryCount, error)

	// Search returns items matching the filter
	Search(ctx context.Context, filter ItemSearchFilter) ([]*entity.Item, error)
}
