package dto

import (
	"time"

	"github.com/bazaarhq/marketplace/internal/domain/entity"
)

// RegisterRequest represents the payload for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the payload for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the public view of a user account
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Balance:   user.FormattedBalance(),
		CreatedAt: user.CreatedAt,
	}
}
