// Package domain defines the authentication entities: token claims, token
// pairs and the credentials exchanged for them.
package domain

import (
	"time"

	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

// Claims is the payload carried by every signed token.
type Claims struct {
	Username  string
	Role      userDomain.Role
	ExpiresAt time.Time
}

// IsAdmin reports whether the token was issued to an admin.
func (c *Claims) IsAdmin() bool {
	return c.Role == userDomain.RoleAdmin
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginInput carries the credentials exchanged for a TokenPair.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries a refresh token exchanged for a new TokenPair.
type RefreshInput struct {
	RefreshToken string
}
