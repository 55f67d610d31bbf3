// Package dto provides data transfer objects for the authentication HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
)

// LoginRequest is the payload of POST /auth.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate requires both credentials.
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
	if err != nil {
		return authDomain.ErrCredentialsRequired
	}
	return nil
}

// ToLoginInput converts the request into a use case input.
func (r LoginRequest) ToLoginInput() authDomain.LoginInput {
	return authDomain.LoginInput{Username: r.Username, Password: r.Password}
}

// RefreshRequest is the payload of PUT /auth.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate requires the refresh token.
func (r *RefreshRequest) Validate() error {
	if err := validation.Validate(r.RefreshToken, validation.Required); err != nil {
		return authDomain.ErrRefreshTokenRequired
	}
	return nil
}

// ToRefreshInput converts the request into a use case input.
func (r RefreshRequest) ToRefreshInput() authDomain.RefreshInput {
	return authDomain.RefreshInput{RefreshToken: r.RefreshToken}
}
