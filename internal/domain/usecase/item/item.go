package item

import (
	"context"
	"fmt"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	"github.com/bazaarhq/marketplace/internal/domain/port/persistence"
)

// Manager implements the item lifecycle: create, update, soft-remove.
// Update and remove run inside a unit of work with the item row locked so a
// concurrent purchase cannot interleave with the state check.
type Manager struct {
	uow          persistence.UnitOfWork
	itemRepo     persistence.ItemRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewManager creates a new item lifecycle manager
func NewManager(
	uow persistence.UnitOfWork,
	itemRepo persistence.ItemRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Manager {
	return &Manager{
		uow:          uow,
		itemRepo:     itemRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateRequest carries the fields for a new listing
type CreateRequest struct {
	Name        string
	Description string
	Category    string
	Price       string // decimal string, must parse to > 0
	Quantity    int
}

// Create lists a new item for sale on behalf of the seller
func (m *Manager) Create(ctx context.Context, sellerID uint64, req CreateRequest) (*entity.Item, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: item name is required", errs.ErrInvalidState)
	}

	priceCents, err := entity.ParsePositiveAmount(req.Price)
	if err != nil {
		return nil, err
	}

	item, err := entity.NewItem(sellerID, req.Name, priceCents, req.Quantity, m.timeProvider)
	if err != nil {
		return nil, err
	}
	item.Description = req.Description
	item.Category = req.Category

	if err := m.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	m.logger.Info("Item listed", map[string]any{
		"item_id":   item.ID,
		"seller_id": sellerID,
		"price":     item.FormattedPrice(),
		"quantity":  item.Quantity,
	})

	return item, nil
}

// Update applies a patch to the caller's listing. Only the seller may update,
// and only while the item has not been sold.
func (m *Manager) Update(ctx context.Context, itemID, callerID uint64, patch entity.ItemPatch) (*entity.Item, error) {
	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin item update: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = m.uow.Rollback(txCtx)
		}
	}()

	items := m.uow.Items(txCtx)
	item, err := items.GetByIDForUpdate(txCtx, itemID)
	if err != nil {
		return nil, err
	}

	if !item.IsOwnedBy(callerID) {
		return nil, errs.ErrForbidden
	}

	if err := patch.Apply(item, m.timeProvider); err != nil {
		return nil, err
	}

	if err := items.Update(txCtx, item); err != nil {
		return nil, err
	}

	if err := m.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	m.logger.Info("Item updated", map[string]any{
		"item_id":   itemID,
		"seller_id": callerID,
		"status":    string(item.Status),
	})

	return item, nil
}

// Remove soft-deletes the caller's listing by setting its status to removed.
// Sold items cannot be removed; the row itself is never deleted.
func (m *Manager) Remove(ctx context.Context, itemID, callerID uint64) error {
	txCtx, err := m.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin item removal: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = m.uow.Rollback(txCtx)
		}
	}()

	items := m.uow.Items(txCtx)
	item, err := items.GetByIDForUpdate(txCtx, itemID)
	if err != nil {
		return err
	}

	if !item.IsOwnedBy(callerID) {
		return errs.ErrForbidden
	}

	if err := item.Remove(m.timeProvider); err != nil {
		return err
	}

	if err := items.Update(txCtx, item); err != nil {
		return err
	}

	if err := m.uow.Commit(txCtx); err != nil {
		return err
	}
	committed = true

	m.logger.Info("Item removed", map[string]any{
		"item_id":   itemID,
		"seller_id": callerID,
	})

	return nil
}

// Get returns a listing by ID regardless of status
func (m *Manager) Get(ctx context.Context, itemID uint64) (*entity.Item, error) {
	return m.itemRepo.GetByID(ctx, itemID)
}

// ListBySeller returns the seller's listings regardless of status
func (m *Manager) ListBySeller(ctx context.Context, sellerID uint64, skip, limit int) ([]*entity.Item, error) {
	if sellerID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return m.itemRepo.ListBySeller(ctx, sellerID, skip, limit)
}
