package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr error
	}{
		{"Valid", LoginRequest{Username: "alice", Password: "secret"}, nil},
		{"MissingUsername", LoginRequest{Password: "secret"}, authDomain.ErrCredentialsRequired},
		{"MissingPassword", LoginRequest{Username: "alice"}, authDomain.ErrCredentialsRequired},
		{"Empty", LoginRequest{}, authDomain.ErrCredentialsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefreshRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RefreshRequest{RefreshToken: "abc"}).Validate())
	assert.ErrorIs(t, (&RefreshRequest{}).Validate(), authDomain.ErrRefreshTokenRequired)
}

func TestMapTokenPairToResponse(t *testing.T) {
	out := MapTokenPairToResponse(&authDomain.TokenPair{AccessToken: "a", RefreshToken: "r"})
	assert.Equal(t, TokenResponse{AccessToken: "a", RefreshToken: "r"}, out)
}
