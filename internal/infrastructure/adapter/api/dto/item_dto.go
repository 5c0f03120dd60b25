package dto

import (
	"time"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// CreateItemRequest represents the payload for listing a new item
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
}

// UpdateItemRequest represents a partial update to a listing.
// Absent fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       *string `json:"price"`
	Quantity    *int    `json:"quantity"`
	Status      *string `json:"status"`
}

// ToPatch converts the request into a domain item patch
func (r *UpdateItemRequest) ToPatch() entity.ItemPatch {
	patch := entity.ItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
	if r.Status != nil {
		status := entity.ItemStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// ItemResponse represents the API view of a listing
type ItemResponse struct {
	ID           uint64    `json:"id"`
	SellerUserID uint64    `json:"sellerUserId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        string    `json:"price"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	ListedAt     time.Time `json:"listedAt"`
}

// ItemPageResponse represents a paginated page of listings
type ItemPageResponse struct {
	Items []ItemResponse `json:"items"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// CategoryResponse represents a distinct category with its listing count
type CategoryResponse struct {
	Name      string `json:"name"`
	ItemCount int64  `json:"itemCount"`
}

// NewItemResponse maps an item entity to its API representation
func NewItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		SellerUserID: item.SellerUserID,
		Name:         item.Name,
		Description:  item.Description,
		Category:     item.Category,
		Price:        item.FormattedPrice(),
		Quantity:     item.Quantity,
		Status:       string(item.Status),
		ListedAt:     item.ListedAt,
	}
}

// NewItemResponses maps a slice of item entities
func NewItemResponses(items []*entity.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}
	return responses
}
