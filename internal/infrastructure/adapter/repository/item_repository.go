package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository implements the ItemRepository port using GORM
type ItemRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewItemRepository creates a new ItemRepository instance
func NewItemRepository(db *gorm.DB, logger coreport.Logger) *ItemRepository {
	return &ItemRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an item model to an entity
func (r *ItemRepository) modelToEntity(itemModel *model.Item) *entity.Item {
	item := &entity.Item{
		ID:           itemModel.ID,
		SellerUserID: itemModel.SellerUserID,
		Name:         itemModel.Name,
		Description:  itemModel.Description,
		Category:     itemModel.Category,
		Quantity:     itemModel.Quantity,
		Status:       entity.ItemStatus(itemModel.Status),
		ListedAt:     itemModel.ListedAt,
		UpdatedAt:    itemModel.UpdatedAt,
	}
	_ = item.SetPriceCents(itemModel.PriceCents)
	return item
}

func (r *ItemRepository) entityToModel(item *entity.Item) model.Item {
	return model.Item{
		ID:           item.ID,
		SellerUserID: item.SellerUserID,
		Name:         item.Name,
		Description:  item.Description,
		Category:     item.Category,
		PriceCents:   item.PriceCents(),
		Quantity:     item.Quantity,
		Status:       string(item.Status),
		ListedAt:     item.ListedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ItemRepository) handleDatabaseError(operation string, err error, itemID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrItemNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"item_id": itemID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrConflict
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// GetByID retrieves an item by ID regardless of status
func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*entity.Item, error) {
	var itemModel model.Item
	result := r.db.WithContext(ctx).First(&itemModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting item", result.Error, id)
	}

	return r.modelToEntity(&itemModel), nil
}

// GetByIDForUpdate retrieves an item by ID with a row-level write lock
func (r *ItemRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Item, error) {
	var itemModel model.Item
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&itemModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking item", result.Error, id)
	}

	return r.modelToEntity(&itemModel), nil
}

// GetForSaleByID retrieves an item only if it is currently for sale
func (r *ItemRepository) GetForSaleByID(ctx context.Context, id uint64) (*entity.Item, error) {
	var itemModel model.Item
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(entity.StatusForSale)).
		First(&itemModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting for-sale item", result.Error, id)
	}

	return r.modelToEntity(&itemModel), nil
}

// Create persists a new listing and assigns its ID
func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := r.entityToModel(item)
	itemModel.ID = 0

	result := r.db.WithContext(ctx).Create(&itemModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating item", result.Error, 0)
	}

	item.ID = itemModel.ID
	return nil
}

// Update persists all mutable fields of the listing
func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) error {
	result := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"category":    item.Category,
			"price_cents": item.PriceCents(),
			"quantity":    item.Quantity,
			"status":      string(item.Status),
			"updated_at":  item.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating item", result.Error, item.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrItemNotFound
	}

	return nil
}

// forSaleQuery scopes a query to listings buyers can see
func (r *ItemRepository) forSaleQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("status = ? AND quantity > 0", string(entity.StatusForSale))
}

// ListForSale returns for-sale items with the pre-pagination total
func (r *ItemRepository) ListForSale(ctx context.Context, filter persistence.ItemListFilter) ([]*entity.Item, int64, error) {
	query := r.forSaleQuery(ctx)

	if filter.Category != "" {
		query = query.Where("category ILIKE ?", "%"+filter.Category+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting items", err, 0)
	}

	sortColumn := "listed_at"
	switch filter.SortBy {
	case "price":
		sortColumn = "price_cents"
	case "name":
		sortColumn = "name"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	skip, limit := normalizePage(filter.Skip, filter.Limit)

	var models []model.Item
	err := query.
		Order(fmt.Sprintf("%s %s", sortColumn, direction)).
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing items", err, 0)
	}

	return r.toEntities(models), total, nil
}

// ListFeatured returns the highest-priced for-sale items
func (r *ItemRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Item, error) {
	var models []model.Item
	err := r.forSaleQuery(ctx).
		Order("price_cents DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing featured items", err, 0)
	}

	return r.toEntities(models), nil
}

// ListRecent returns for-sale items listed within the last days
func (r *ItemRepository) ListRecent(ctx context.Context, days, limit int) ([]*entity.Item, error) {
	var models []model.Item
	err := r.forSaleQuery(ctx).
		Where("listed_at >= NOW() - ? * INTERVAL '1 day'", days).
		Order("listed_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing recent items", err, 0)
	}

	return r.toEntities(models), nil
}

// ListBySeller returns all of a seller's items regardless of status
func (r *ItemRepository) ListBySeller(ctx context.Context, sellerID uint64, skip, limit int) ([]*entity.Item, error) {
	skip, limit = normalizePage(skip, limit)

	var models []model.Item
	err := r.db.WithContext(ctx).
		Where("seller_user_id = ?", sellerID).
		Order("listed_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing seller items", err, 0)
	}

	return r.toEntities(models), nil
}

// ListBySellerAndStatus returns a seller's items in the given status
func (r *ItemRepository) ListBySellerAndStatus(ctx context.Context, sellerID uint64, status entity.ItemStatus) ([]*entity.Item, error) {
	var models []model.Item
	err := r.db.WithContext(ctx).
		Where("seller_user_id = ? AND status = ?", sellerID, string(status)).
		Order("listed_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing seller items by status", err, 0)
	}

	return r.toEntities(models), nil
}

// ListPurchasedByUser returns items the user has bought at least once
func (r *ItemRepository) ListPurchasedByUser(ctx context.Context, userID uint64) ([]*entity.Item, error) {
	var models []model.Item
	err := r.db.WithContext(ctx).
		Joins("JOIN transactions ON transactions.item_id = items.id").
		Where("transactions.buyer_user_id = ?", userID).
		Distinct("items.*").
		Order("items.id").
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing purchased items", err, 0)
	}

	return r.toEntities(models), nil
}

// Categories returns distinct categories of for-sale items with counts
func (r *ItemRepository) Categories(ctx context.Context) ([]persistence.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	err := r.forSaleQuery(ctx).
		Select("category, COUNT(*) AS count").
		Where("category <> ''").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing categories", err, 0)
	}

	counts := make([]persistence.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, persistence.CategoryCount{
			Name:      row.Category,
			ItemCount: row.Count,
		})
	}
	return counts, nil
}

// Search returns items matching the filter
func (r *ItemRepository) Search(ctx context.Context, filter persistence.ItemSearchFilter) ([]*entity.Item, error) {
	query := r.db.WithContext(ctx).Model(&model.Item{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", "%"+filter.Category+"%")
	}
	if filter.MinPriceCents != nil {
		query = query.Where("price_cents >= ?", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		query = query.Where("price_cents <= ?", *filter.MaxPriceCents)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.SellerID != nil {
		query = query.Where("seller_user_id = ?", *filter.SellerID)
	}
	if filter.MinQuantity != nil {
		query = query.Where("quantity >= ?", *filter.MinQuantity)
	}

	var models []model.Item
	if err := query.Order("listed_at DESC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("searching items", err, 0)
	}

	return r.toEntities(models), nil
}

func (r *ItemRepository) toEntities(models []model.Item) []*entity.Item {
	items := make([]*entity.Item, 0, len(models))
	for i := range models {
		items = append(items, r.modelToEntity(&models[i]))
	}
	return items
}
