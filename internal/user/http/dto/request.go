// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/moviecatalog/internal/user/domain"
	"github.com/allisson/moviecatalog/internal/user/usecase"
	appValidation "github.com/allisson/moviecatalog/internal/validation"
)

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks required fields and the role enum. An empty role means "user".
func (r *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required.Error("is required"), appValidation.NotBlank),
		validation.Field(&r.Password, validation.Required.Error("is required")),
		validation.Field(&r.Role, appValidation.Role),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateUserRequest is the partial payload of PUT /users/:id.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// Validate requires at least one field; present fields must not be empty.
func (r *UpdateUserRequest) Validate() error {
	if r.Username == nil && r.Password == nil && r.Role == nil {
		return domain.ErrNothingToUpdate
	}
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.NilOrNotEmpty.Error("must not be empty"), appValidation.NotBlank),
		validation.Field(&r.Password, validation.NilOrNotEmpty.Error("must not be empty")),
		validation.Field(&r.Role, appValidation.Role),
	)
	return appValidation.WrapValidationError(err)
}

// ToCreateUserInput converts the request into a use case input.
func (r CreateUserRequest) ToCreateUserInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
		Role:     domain.Role(r.Role),
	}
}

// ToUpdateUserInput converts the request into a use case input.
func (r UpdateUserRequest) ToUpdateUserInput() usecase.UpdateUserInput {
	input := usecase.UpdateUserInput{
		Username: r.Username,
		Password: r.Password,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		input.Role = &role
	}
	return input
}
