// Package usecase implements login and token refresh on top of the user store.
package usecase

import (
	"context"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

// UserFinder looks users up by username.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// PasswordVerifier checks a plaintext password against its stored form.
type PasswordVerifier interface {
	Verify(plaintext, stored string) bool
}

// TokenCodec signs and verifies tokens.
type TokenCodec interface {
	Encode(claims authDomain.Claims) (string, error)
	Decode(token string) (*authDomain.Claims, error)
}

// AuthUseCase defines the authentication operations.
type AuthUseCase interface {
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input authDomain.LoginInput) (*authDomain.TokenPair, error)
	// Refresh exchanges a valid refresh token for a new pair built from the
	// current user record, so role changes take effect.
	Refresh(ctx context.Context, input authDomain.RefreshInput) (*authDomain.TokenPair, error)
	// IssueTokens signs an access and a refresh token for user.
	IssueTokens(user *userDomain.User) (*authDomain.TokenPair, error)
}
