// Package http provides HTTP handlers for genre operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/moviecatalog/internal/genre/http/dto"
	"github.com/allisson/moviecatalog/internal/genre/usecase"
	"github.com/allisson/moviecatalog/internal/httputil"
)

// GenreHandler handles genre HTTP requests.
type GenreHandler struct {
	genreUseCase usecase.UseCase
	logger          *slog.Logger
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(genreUseCase usecase.UseCase, logger *slog.Logger) *GenreHandler {
	return &GenreHandler{
		genreUseCase: genreUseCase,
		logger:          logger,
	}
}

// ListHandler returns every genre.
// GET /genres - Admin only. Returns 404 when there are none.
func (h *GenreHandler) ListHandler(c *gin.Context) {
	genres, err := h.genreUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGenresToResponse(genres))
}

// GetHandler returns a single genre.
// GET /genres/:id - Any authenticated user.
func (h *GenreHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	genre, err := h.genreUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGenreToResponse(genre))
}

// CreateHandler creates a genre.
// POST /genres - Admin only. Returns 201 Created with a Location header.
func (h *GenreHandler) CreateHandler(c *gin.Context) {
	var req dto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	genre, err := h.genreUseCase.Create(c.Request.Context(), req.ToGenreInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Location", fmt.Sprintf("/genres/%d", genre.ID))
	c.JSON(http.StatusCreated, dto.MapGenreToResponse(genre))
}

// UpdateHandler replaces a genre.
// PUT /genres/:id - Admin only. Returns 204 No Content.
func (h *GenreHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.genreUseCase.Update(c.Request.Context(), id, req.ToGenreInput()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteHandler removes a genre.
// DELETE /genres/:id - Admin only. Returns 204 No Content.
func (h *GenreHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.genreUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
