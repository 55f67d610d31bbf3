// Package dto provides data transfer objects for the director HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/moviecatalog/internal/director/usecase"
	appValidation "github.com/allisson/moviecatalog/internal/validation"
)

// DirectorRequest is the payload of POST /directors and PUT /directors/:id.
type DirectorRequest struct {
	Name string `json:"name"`
}

// Validate requires a non-blank name.
func (r *DirectorRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.Error("is required"), appValidation.NotBlank),
	)
	return appValidation.WrapValidationError(err)
}

// ToDirectorInput converts the request into a use case input.
func (r DirectorRequest) ToDirectorInput() usecase.DirectorInput {
	return usecase.DirectorInput{Name: r.Name}
}
