package handler

import (
	"net/http"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	authUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/auth"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and current-user requests
type AuthHandler struct {
	authService *authUseCase.Service
	userService *userUseCase.UseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authService *authUseCase.Service,
	userService *userUseCase.UseCase,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	})
}

// Me handles the GET /auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
