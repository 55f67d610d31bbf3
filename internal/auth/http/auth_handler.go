package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/moviecatalog/internal/auth/http/dto"
	authUseCase "github.com/allisson/moviecatalog/internal/auth/usecase"
	"github.com/allisson/moviecatalog/internal/httputil"
)

// AuthHandler serves login and token refresh.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler exchanges credentials for a token pair.
// POST /auth - Returns 201 Created with {access_token, refresh_token}.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	pair, err := h.authUseCase.Login(c.Request.Context(), req.ToLoginInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTokenPairToResponse(pair))
}

// RefreshHandler exchanges a refresh token for a new token pair.
// PUT /auth - Returns 201 Created with {access_token, refresh_token}.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	pair, err := h.authUseCase.Refresh(c.Request.Context(), req.ToRefreshInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapTokenPairToResponse(pair))
}
