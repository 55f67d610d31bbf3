package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

type authUseCase struct {
	users      UserFinder
	hasher     PasswordVerifier
	codec      TokenCodec
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewAuthUseCase creates an AuthUseCase. Access tokens live for accessTTL and
// refresh tokens for refreshTTL.
func NewAuthUseCase(
	users UserFinder,
	hasher PasswordVerifier,
	codec TokenCodec,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthUseCase {
	return &authUseCase{
		users:      users,
		hasher:     hasher,
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (a *authUseCase) Login(ctx context.Context, input authDomain.LoginInput) (*authDomain.TokenPair, error) {
	if input.Username == "" || input.Password == "" {
		return nil, authDomain.ErrCredentialsRequired
	}

	user, err := a.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrUserNotRegistered
		}
		return nil, err
	}

	if !a.hasher.Verify(input.Password, user.Password) {
		return nil, authDomain.ErrWrongPassword
	}

	return a.IssueTokens(user)
}

func (a *authUseCase) Refresh(ctx context.Context, input authDomain.RefreshInput) (*authDomain.TokenPair, error) {
	if input.RefreshToken == "" {
		return nil, authDomain.ErrRefreshTokenRequired
	}

	claims, err := a.codec.Decode(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		return nil, err
	}

	return a.IssueTokens(user)
}

func (a *authUseCase) IssueTokens(user *userDomain.User) (*authDomain.TokenPair, error) {
	now := a.now().Truncate(time.Second)

	access, err := a.codec.Encode(authDomain.Claims{
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: now.Add(a.accessTTL),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign access token")
	}

	refresh, err := a.codec.Encode(authDomain.Claims{
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: now.Add(a.refreshTTL),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign refresh token")
	}

	return &authDomain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
