package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	"github.com/allisson/moviecatalog/internal/auth/service"
	"github.com/allisson/moviecatalog/internal/auth/usecase/mocks"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

const (
	testAccessTTL  = 30 * time.Minute
	testRefreshTTL = 130 * 24 * time.Hour
)

type authFixture struct {
	users  *mocks.MockUserFinder
	hasher *service.PasswordHasher
	codec  *service.TokenCodec
	uc     *authUseCase
	now    time.Time
}

func setupAuth(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:  mocks.NewMockUserFinder(t),
		hasher: service.NewPasswordHasher("salt", service.DefaultPasswordIterations),
		codec:  service.NewTokenCodec("secret"),
		now:    time.Now().Truncate(time.Second),
	}
	f.uc = NewAuthUseCase(f.users, f.hasher, f.codec, testAccessTTL, testRefreshTTL).(*authUseCase)
	f.uc.now = func() time.Time { return f.now }
	return f
}

func (f *authFixture) user(username, password string, role userDomain.Role) *userDomain.User {
	return &userDomain.User{ID: 1, Username: username, Password: f.hasher.Hash(password), Role: role}
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_IssuesPairWithTTLs", func(t *testing.T) {
		f := setupAuth(t)
		f.users.On("GetByUsername", ctx, "alice").Return(f.user("alice", "secret", userDomain.RoleUser), nil).Once()

		pair, err := f.uc.Login(ctx, authDomain.LoginInput{Username: "alice", Password: "secret"})
		require.NoError(t, err)

		access, err := f.codec.Decode(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", access.Username)
		assert.Equal(t, userDomain.RoleUser, access.Role)
		assert.True(t, f.now.Add(testAccessTTL).Equal(access.ExpiresAt))

		refresh, err := f.codec.Decode(pair.RefreshToken)
		require.NoError(t, err)
		assert.True(t, f.now.Add(testRefreshTTL).Equal(refresh.ExpiresAt))
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		f := setupAuth(t)

		_, err := f.uc.Login(ctx, authDomain.LoginInput{Username: "alice"})
		assert.ErrorIs(t, err, authDomain.ErrCredentialsRequired)

		_, err = f.uc.Login(ctx, authDomain.LoginInput{Password: "secret"})
		assert.ErrorIs(t, err, authDomain.ErrCredentialsRequired)
	})

	t.Run("Error_NotRegistered", func(t *testing.T) {
		f := setupAuth(t)
		f.users.On("GetByUsername", ctx, "ghost").Return(nil, userDomain.ErrUserNotFound).Once()

		_, err := f.uc.Login(ctx, authDomain.LoginInput{Username: "ghost", Password: "x"})

		assert.ErrorIs(t, err, authDomain.ErrUserNotRegistered)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		f := setupAuth(t)
		f.users.On("GetByUsername", ctx, "alice").Return(f.user("alice", "secret", userDomain.RoleUser), nil).Once()

		_, err := f.uc.Login(ctx, authDomain.LoginInput{Username: "alice", Password: "nope"})

		assert.ErrorIs(t, err, authDomain.ErrWrongPassword)
	})

	t.Run("Error_CorruptStoredPassword", func(t *testing.T) {
		f := setupAuth(t)
		f.users.On("GetByUsername", ctx, "alice").
			Return(&userDomain.User{ID: 1, Username: "alice", Password: "!!not-base64", Role: userDomain.RoleUser}, nil).
			Once()

		_, err := f.uc.Login(ctx, authDomain.LoginInput{Username: "alice", Password: "secret"})

		assert.ErrorIs(t, err, authDomain.ErrWrongPassword)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		f := setupAuth(t)
		f.users.On("GetByUsername", ctx, "alice").Return(nil, errors.New("db down")).Once()

		_, err := f.uc.Login(ctx, authDomain.LoginInput{Username: "alice", Password: "secret"})

		assert.EqualError(t, err, "db down")
	})
}

func TestAuthUseCase_IssueTokens_WholeSecondExpiry(t *testing.T) {
	f := setupAuth(t)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 750_000_000, time.UTC)
	f.uc.now = func() time.Time { return clock }

	pair, err := f.uc.IssueTokens(f.user("alice", "secret", userDomain.RoleUser))
	require.NoError(t, err)

	access, err := f.codec.Decode(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, clock.Truncate(time.Second).Add(testAccessTTL), access.ExpiresAt.UTC())
	assert.Zero(t, access.ExpiresAt.Nanosecond())
}

func TestAuthUseCase_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_UsesFreshRecord", func(t *testing.T) {
		f := setupAuth(t)
		old, err := f.uc.IssueTokens(f.user("alice", "secret", userDomain.RoleUser))
		require.NoError(t, err)

		f.users.On("GetByUsername", ctx, "alice").Return(f.user("alice", "secret", userDomain.RoleAdmin), nil).Once()

		pair, err := f.uc.Refresh(ctx, authDomain.RefreshInput{RefreshToken: old.RefreshToken})
		require.NoError(t, err)

		claims, err := f.codec.Decode(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userDomain.RoleAdmin, claims.Role)
	})

	t.Run("Error_Missing", func(t *testing.T) {
		f := setupAuth(t)

		_, err := f.uc.Refresh(ctx, authDomain.RefreshInput{})

		assert.ErrorIs(t, err, authDomain.ErrRefreshTokenRequired)
	})

	t.Run("Error_Invalid", func(t *testing.T) {
		f := setupAuth(t)

		_, err := f.uc.Refresh(ctx, authDomain.RefreshInput{RefreshToken: "garbage"})

		assert.ErrorIs(t, err, authDomain.ErrTokenInvalid)
	})

	t.Run("Error_Expired", func(t *testing.T) {
		f := setupAuth(t)
		expired, err := f.codec.Encode(authDomain.Claims{
			Username:  "alice",
			Role:      userDomain.RoleUser,
			ExpiresAt: time.Now().Add(-time.Second),
		})
		require.NoError(t, err)

		_, err = f.uc.Refresh(ctx, authDomain.RefreshInput{RefreshToken: expired})

		assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
	})

	t.Run("Error_UserGone", func(t *testing.T) {
		f := setupAuth(t)
		old, err := f.uc.IssueTokens(f.user("alice", "secret", userDomain.RoleUser))
		require.NoError(t, err)
		f.users.On("GetByUsername", ctx, "alice").Return(nil, userDomain.ErrUserNotFound).Once()

		_, err = f.uc.Refresh(ctx, authDomain.RefreshInput{RefreshToken: old.RefreshToken})

		assert.ErrorIs(t, err, userDomain.ErrUserNotFound)
	})
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockAuthUseCase(t)
	m := &recordingMetrics{}
	uc := NewAuthUseCaseWithMetrics(next, m)

	user := &userDomain.User{Username: "alice"}
	pair := &authDomain.TokenPair{AccessToken: "a", RefreshToken: "r"}
	next.On("Login", ctx, mock.Anything).Return(pair, nil).Once()
	next.On("Refresh", ctx, mock.Anything).Return(nil, authDomain.ErrTokenExpired).Once()
	next.On("IssueTokens", user).Return(pair, nil).Once()

	got, err := uc.Login(ctx, authDomain.LoginInput{Username: "alice", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, pair, got)

	_, err = uc.Refresh(ctx, authDomain.RefreshInput{RefreshToken: "r"})
	assert.ErrorIs(t, err, authDomain.ErrTokenExpired)

	_, err = uc.IssueTokens(user)
	require.NoError(t, err)

	assert.Equal(t, []string{"auth/login/success", "auth/refresh/error"}, m.operations)
	assert.Equal(t, 2, m.durations)
}

type recordingMetrics struct {
	operations []string
	durations  int
}

func (r *recordingMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.operations = append(r.operations, domain+"/"+operation+"/"+status)
}

func (r *recordingMetrics) RecordDuration(ctx context.Context, domain, operation string, d time.Duration, status string) {
	r.durations++
}
