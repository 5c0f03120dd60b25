package dto

import (
	"time"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// BalanceResponse represents the API response for a user's wallet balance
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"`
}

// DepositRequest represents the payload for a wallet top-up
type DepositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// DepositResponse represents a recorded deposit
type DepositResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Amount      string    `json:"amount"`
	DepositTime time.Time `json:"depositTime"`
}

// TransferRequest represents the payload for a balance transfer
type TransferRequest struct {
	ReceiverUserID uint64 `json:"receiverUserId" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
}

// TransferResponse represents the result of a completed transfer
type TransferResponse struct {
	SenderUserID   uint64 `json:"senderUserId"`
	ReceiverUserID uint64 `json:"receiverUserId"`
	Amount         string `json:"amount"`
	NewBalance     string `json:"newBalance"`
}

// NewDepositResponse maps a deposit entity to its API representation
func NewDepositResponse(deposit *entity.Deposit) DepositResponse {
	return DepositResponse{
		ID:          deposit.ID,
		UserID:      deposit.UserID,
		Amount:      deposit.FormattedAmount(),
		DepositTime: deposit.DepositTime,
	}
}

// NewDepositResponses maps a slice of deposit entities
func NewDepositResponses(deposits []*entity.Deposit) []DepositResponse {
	responses := make([]DepositResponse, 0, len(deposits))
	for _, deposit := range deposits {
		responses = append(responses, NewDepositResponse(deposit))
	}
	return responses
}
