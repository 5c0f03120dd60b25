package entity

import (
	"time"

	errs "github.com/bazaarhq/marketplace/internal/domain/error"
	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
)

// ItemStatus identifies the lifecycle state of a listing.
// Transitions: draft -> for_sale -> sold (terminal, via purchase only) and
// draft|for_sale -> removed (terminal, seller-initiated). Items are never
// physically deleted.
type ItemStatus string

const (
	StatusDraft   ItemStatus = "draft"
	StatusForSale ItemStatus = "for_sale"
	StatusSold    ItemStatus = "sold"
	StatusRemoved ItemStatus = "removed"
)

// Item represents a sellable listing
type Item struct {
	ID           uint64
	SellerUserID uint64
	Name         string
	Description  string
	Category     string
	priceCents   int64 // unit price in cents, always > 0 (private)
	Quantity     int
	Status       ItemStatus
	ListedAt     time.Time
	UpdatedAt    time.Time
}

// NewItem creates a new listing in the for_sale state
func NewItem(sellerID uint64, name string, priceCents int64, quantity int, timeProvider coreport.TimeProvider) (*Item, error) {
	if sellerID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if priceCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}

	now := timeProvider.Now()
	return &Item{
		SellerUserID: sellerID,
		Name:         name,
		priceCents:   priceCents,
		Quantity:     quantity,
		Status:       StatusForSale,
		ListedAt:     now,
		UpdatedAt:    now,
	}, nil
}

// PriceCents returns the unit price in cents
func (i *Item) PriceCents() int64 {
	return i.priceCents
}

// FormattedPrice returns the unit price as a string with 2 decimal places
func (i *Item) FormattedPrice() string {
	return CentsToString(i.priceCents)
}

// SetPriceCents updates the unit price (for repository hydration and patches)
func (i *Item) SetPriceCents(cents int64) error {
	if cents <= 0 {
		return errs.ErrInvalidAmount
	}
	i.priceCents = cents
	return nil
}

// IsOwnedBy reports whether the given user is the item's seller
func (i *Item) IsOwnedBy(userID uint64) bool {
	return i.SellerUserID == userID
}

// ConsumeStock decrements the quantity by the purchased amount, flipping the
// status to sold when stock is exhausted. The caller must hold the item row
// lock for the duration of the check-and-decrement.
func (i *Item) ConsumeStock(quantity int, timeProvider coreport.TimeProvider) error {
	if i.Status != StatusForSale {
		return errs.ErrItemUnavailable
	}
	if quantity <= 0 {
		return errs.ErrInvalidQuantity
	}
	if quantity > i.Quantity {
		return NewInsufficientStock(i, quantity)
	}

	i.Quantity -= quantity
	if i.Quantity == 0 {
		i.Status = StatusSold
	}
	i.UpdatedAt = timeProvider.Now()
	return nil
}

// Remove soft-deletes the listing. Sold items cannot be removed.
func (i *Item) Remove(timeProvider coreport.TimeProvider) error {
	switch i.Status {
	case StatusDraft, StatusForSale:
		i.Status = StatusRemoved
		i.UpdatedAt = timeProvider.Now()
		return nil
	default:
		return errs.ErrInvalidState
	}
}

// Editable reports whether the listing may still be modified by its seller
func (i *Item) Editable() bool {
	return i.Status == StatusDraft || i.Status == StatusForSale
}

// NewInsufficientStock builds the detailed stock error for this item
func NewInsufficientStock(i *Item, requested int) error {
	return errs.NewInsufficientStockError(i.ID, requested, i.Quantity)
}

// ItemPatch enumerates the mutable fields of a listing. Nil fields are left
// untouched; each set field is validated before it is applied.
type ItemPatch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *string // decimal string, parsed to cents
	Quantity    *int
	Status      *ItemStatus // only draft <-> for_sale moves are allowed here
}

// Apply validates and applies the patch to the item
func (p *ItemPatch) Apply(item *Item, timeProvider coreport.TimeProvider) error {
	if !item.Editable() {
		return errs.ErrInvalidState
	}

	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Price != nil {
		cents, err := ParsePositiveAmount(*p.Price)
		if err != nil {
			return err
		}
		item.priceCents = cents
	}
	if p.Quantity != nil {
		if *p.Quantity < 0 {
			return errs.ErrInvalidQuantity
		}
		item.Quantity = *p.Quantity
	}
	if p.Status != nil {
		switch *p.Status {
		case StatusDraft, StatusForSale:
			item.Status = *p.Status
		default:
			// sold and removed are reached only via purchase / Remove
			return errs.ErrInvalidState
		}
	}

	item.UpdatedAt = timeProvider.Now()
	return nil
}
