// Package dto provides data transfer objects for the genre HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/moviecatalog/internal/genre/usecase"
	appValidation "github.com/allisson/moviecatalog/internal/validation"
)

// GenreRequest is the payload of POST /genres and PUT /genres/:id.
type GenreRequest struct {
	Name string `json:"name"`
}

// Validate requires a non-blank name.
func (r *GenreRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.Error("is required"), appValidation.NotBlank),
	)
	return appValidation.WrapValidationError(err)
}

// ToGenreInput converts the request into a use case input.
func (r GenreRequest) ToGenreInput() usecase.GenreInput {
	return usecase.GenreInput{Name: r.Name}
}
