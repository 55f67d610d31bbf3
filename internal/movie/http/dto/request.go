// Package dto provides data transfer objects for the movie HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/moviecatalog/internal/movie/usecase"
	appValidation "github.com/allisson/moviecatalog/internal/validation"
)

// MovieRequest is the payload of POST /movies and PUT /movies/:id.
// Omitted genre_id/director_id leave the movie without that reference.
type MovieRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *int64  `json:"genre_id"`
	DirectorID  *int64  `json:"director_id"`
}

// Validate requires a non-blank title.
func (r *MovieRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("is required"), appValidation.NotBlank),
	)
	return appValidation.WrapValidationError(err)
}

// ToMovieInput converts the request into a use case input.
func (r MovieRequest) ToMovieInput() usecase.MovieInput {
	return usecase.MovieInput{
		Title:       r.Title,
		Description: r.Description,
		Trailer:     r.Trailer,
		Year:        r.Year,
		Rating:      r.Rating,
		GenreID:     r.GenreID,
		DirectorID:  r.DirectorID,
	}
}
