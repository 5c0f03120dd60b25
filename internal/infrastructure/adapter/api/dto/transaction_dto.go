package dto

import (
	"time"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
)

// PurchaseRequest represents the payload for buying an item
type PurchaseRequest struct {
	ItemID   uint64 `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// TransactionResponse represents a completed purchase record
type TransactionResponse struct {
	ID                uint64    `json:"id"`
	ItemID            uint64    `json:"itemId"`
	BuyerUserID       uint64    `json:"buyerUserId"`
	SellerUserID      uint64    `json:"sellerUserId"`
	QuantityPurchased int       `json:"quantityPurchased"`
	PurchasePrice     string    `json:"purchasePrice"`
	TotalAmount       string    `json:"totalAmount"`
	TransactionTime   time.Time `json:"transactionTime"`
}

// PartyResponse represents a transaction counterparty
type PartyResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TransactionItemResponse represents the traded item inside a detail view
type TransactionItemResponse struct {
	ItemID      uint64 `json:"itemId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// TransactionDetailResponse enriches a transaction with parties and item
type TransactionDetailResponse struct {
	Transaction TransactionResponse      `json:"transaction"`
	Buyer       *PartyResponse           `json:"buyer,omitempty"`
	Seller      *PartyResponse           `json:"seller,omitempty"`
	Item        *TransactionItemResponse `json:"item,omitempty"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                txn.ID,
		ItemID:            txn.ItemID,
		BuyerUserID:       txn.BuyerUserID,
		SellerUserID:      txn.SellerUserID,
		QuantityPurchased: txn.QuantityPurchased,
		PurchasePrice:     txn.FormattedPurchasePrice(),
		TotalAmount:       txn.FormattedTotalAmount(),
		TransactionTime:   txn.TransactionTime,
	}
}

// NewTransactionResponses maps a slice of transaction entities
func NewTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, NewTransactionResponse(txn))
	}
	return responses
}

// NewTransactionDetailResponse maps an enriched transaction detail
func NewTransactionDetailResponse(detail *userUseCase.TransactionDetail) TransactionDetailResponse {
	response := TransactionDetailResponse{
		Transaction: NewTransactionResponse(detail.Transaction),
	}
	if detail.Buyer != nil {
		response.Buyer = &PartyResponse{
			UserID:   detail.Buyer.UserID,
			Username: detail.Buyer.Username,
			Email:    detail.Buyer.Email,
		}
	}
	if detail.Seller != nil {
		response.Seller = &PartyResponse{
			UserID:   detail.Seller.UserID,
			Username: detail.Seller.Username,
			Email:    detail.Seller.Email,
		}
	}
	if detail.Item != nil {
		response.Item = &TransactionItemResponse{
			ItemID:      detail.Item.ItemID,
			Name:        detail.Item.Name,
			Description: detail.Item.Description,
			Category:    detail.Item.Category,
			Price:       detail.Item.Price,
		}
	}
	return response
}
