// Package http provides HTTP handlers for movie operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/moviecatalog/internal/httputil"
	"github.com/allisson/moviecatalog/internal/movie/domain"
	"github.com/allisson/moviecatalog/internal/movie/http/dto"
	"github.com/allisson/moviecatalog/internal/movie/usecase"
)

// MovieHandler handles movie HTTP requests.
type MovieHandler struct {
	movieUseCase usecase.UseCase
	logger       *slog.Logger
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movieUseCase usecase.UseCase, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		movieUseCase: movieUseCase,
		logger:       logger,
	}
}

// ListHandler returns movies, optionally filtered.
// GET /movies?director_id=&genre_id=&year= - Admin only.
//
// Only the first present filter in the order director_id, genre_id, year is
// applied; a non-integer value for it is 400. An empty result is 404.
func (h *MovieHandler) ListHandler(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	movies, err := h.movieUseCase.ListFiltered(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMoviesToResponse(movies))
}

// GetHandler returns a single movie.
// GET /movies/:id - Any authenticated user.
func (h *MovieHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	movie, err := h.movieUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapMovieToResponse(movie))
}

// CreateHandler creates a movie.
// POST /movies - Admin only. Returns 201 Created with a Location header.
func (h *MovieHandler) CreateHandler(c *gin.Context) {
	var req dto.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	movie, err := h.movieUseCase.Create(c.Request.Context(), req.ToMovieInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Location", fmt.Sprintf("/movies/%d", movie.ID))
	c.JSON(http.StatusCreated, dto.MapMovieToResponse(movie))
}

// UpdateHandler replaces a movie.
// PUT /movies/:id - Admin only. Returns 204 No Content.
func (h *MovieHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.movieUseCase.Update(c.Request.Context(), id, req.ToMovieInput()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteHandler removes a movie.
// DELETE /movies/:id - Admin only. Returns 204 No Content.
func (h *MovieHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.movieUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseFilter reads the query filters in precedence order and stops at the
// first one present.
func parseFilter(c *gin.Context) (domain.Filter, error) {
	directorID, err := httputil.ParseOptionalInt64Query(c, "director_id")
	if err != nil || directorID != nil {
		return domain.Filter{DirectorID: directorID}, err
	}

	genreID, err := httputil.ParseOptionalInt64Query(c, "genre_id")
	if err != nil || genreID != nil {
		return domain.Filter{GenreID: genreID}, err
	}

	year, err := httputil.ParseOptionalInt64Query(c, "year")
	if err != nil || year == nil {
		return domain.Filter{}, err
	}
	y := int(*year)
	return domain.Filter{Year: &y}, nil
}
