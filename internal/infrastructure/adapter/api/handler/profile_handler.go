package handler

import (
	"net/http"

	coreport "github.com/bazaarhq/marketplace/internal/domain/port/core"
	userUseCase "github.com/bazaarhq/marketplace/internal/domain/usecase/user"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/bazaarhq/marketplace/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile overview requests
type ProfileHandler struct {
	userService *userUseCase.UseCase
	logger      coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(userService *userUseCase.UseCase, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		logger:      logger,
	}
}

// Overview handles the GET /profile endpoint
func (h *ProfileHandler) Overview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	overview, err := h.userService.GetProfileOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileOverviewResponse(overview))
}
