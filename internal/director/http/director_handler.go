// Package http provides HTTP handlers for director operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/moviecatalog/internal/director/http/dto"
	"github.com/allisson/moviecatalog/internal/director/usecase"
	"github.com/allisson/moviecatalog/internal/httputil"
)

// DirectorHandler handles director HTTP requests.
type DirectorHandler struct {
	directorUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewDirectorHandler creates a new DirectorHandler.
func NewDirectorHandler(directorUseCase usecase.UseCase, logger *slog.Logger) *DirectorHandler {
	return &DirectorHandler{
		directorUseCase: directorUseCase,
		logger:          logger,
	}
}

// ListHandler returns every director.
// GET /directors - Admin only. Returns 404 when there are none.
func (h *DirectorHandler) ListHandler(c *gin.Context) {
	directors, err := h.directorUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDirectorsToResponse(directors))
}

// GetHandler returns a single director.
// GET /directors/:id - Any authenticated user.
func (h *DirectorHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	director, err := h.directorUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDirectorToResponse(director))
}

// CreateHandler creates a director.
// POST /directors - Admin only. Returns 201 Created with a Location header.
func (h *DirectorHandler) CreateHandler(c *gin.Context) {
	var req dto.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	director, err := h.directorUseCase.Create(c.Request.Context(), req.ToDirectorInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Location", fmt.Sprintf("/directors/%d", director.ID))
	c.JSON(http.StatusCreated, dto.MapDirectorToResponse(director))
}

// UpdateHandler replaces a director.
// PUT /directors/:id - Admin only. Returns 204 No Content.
func (h *DirectorHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.DirectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.directorUseCase.Update(c.Request.Context(), id, req.ToDirectorInput()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteHandler removes a director.
// DELETE /directors/:id - Admin only. Returns 204 No Content.
func (h *DirectorHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.directorUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
