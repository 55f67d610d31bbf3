package dto

import authDomain "github.com/allisson/moviecatalog/internal/auth/domain"

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MapTokenPairToResponse converts a domain token pair into its response.
func MapTokenPairToResponse(pair *authDomain.TokenPair) TokenResponse {
	return TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
}
