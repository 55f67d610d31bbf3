package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

// ErrEmptySecret is returned when a codec is asked to sign with an empty key.
var ErrEmptySecret = errors.New("token secret must not be empty")

// tokenClaims is the JWT wire form: {"username", "role", "exp"}.
type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 tokens with a shared secret.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// NewTokenCodec creates a TokenCodec for secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// Encode signs claims into a compact JWT. The "exp" claim has whole-second
// precision, so Decode returns ExpiresAt truncated to the second.
func (c *TokenCodec) Encode(claims authDomain.Claims) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrEmptySecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Username: claims.Username,
		Role:     string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	})
	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry of token and returns its claims.
// Expired tokens fail with ErrTokenExpired; anything else that does not verify
// fails with ErrTokenInvalid.
func (c *TokenCodec) Decode(token string) (*authDomain.Claims, error) {
	if len(c.secret) == 0 {
		return nil, authDomain.ErrTokenInvalid
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(
		token,
		&parsed,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrTokenInvalid
	}

	return &authDomain.Claims{
		Username:  parsed.Username,
		Role:      userDomain.Role(parsed.Role),
		ExpiresAt: parsed.ExpiresAt.Time,
	}, nil
}

// StripBearer removes a leading "Bearer" scheme marker (any case) from an
// Authorization header value. A bare token is returned unchanged.
func StripBearer(header string) string {
	fields := strings.Fields(header)
	if len(fields) > 0 && strings.EqualFold(fields[0], "bearer") {
		if len(fields) == 1 {
			return ""
		}
		return fields[1]
	}
	return strings.TrimSpace(header)
}
