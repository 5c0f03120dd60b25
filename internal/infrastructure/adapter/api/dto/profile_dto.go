package dto

import (
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
)

// ProfileOverviewResponse bundles a user's wallet and item activity
type ProfileOverviewResponse struct {
	UserID         uint64         `json:"userId"`
	Username       string         `json:"username"`
	WalletBalance  string         `json:"walletBalance"`
	ItemsForSale   []ItemResponse `json:"itemsForSale"`
	SoldItems      []ItemResponse `json:"soldItems"`
	PurchasedItems []ItemResponse `json:"purchasedItems"`
}

// NewProfileOverviewResponse maps a profile overview
func NewProfileOverviewResponse(overview *userUseCase.ProfileOverview) ProfileOverviewResponse {
	return ProfileOverviewResponse{
		UserID:         overview.UserID,
		Username:       overview.Username,
		WalletBalance:  overview.WalletBalance,
		ItemsForSale:   NewItemResponses(overview.ItemsForSale),
		SoldItems:      NewItemResponses(overview.SoldItems),
		PurchasedItems: NewItemResponses(overview.PurchasedItems),
	}
}
