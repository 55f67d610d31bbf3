// Package http provides the authentication endpoints and the middleware that
// gates every other route.
package http

import (
	"context"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
)

// claimsKey is a context key type for storing verified token claims.
type claimsKey struct{}

// WithClaims stores verified token claims in the context.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves verified token claims from the context.
// Returns (nil, false) when the request was not authenticated.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok && claims != nil
}
