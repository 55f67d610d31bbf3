package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/moviecatalog/internal/database/mocks"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/user/domain"
	"github.com/allisson/moviecatalog/internal/user/usecase"
	"github.com/allisson/moviecatalog/internal/user/usecase/mocks"
)

type fixture struct {
	txManager *databaseMocks.MockTxManager
	repo      *mocks.MockUserRepository
	hasher    *mocks.MockPasswordHasher
	uc        usecase.UseCase
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		txManager: databaseMocks.NewMockTxManager(t),
		repo:      mocks.NewMockUserRepository(t),
		hasher:    mocks.NewMockPasswordHasher(t),
	}
	f.uc = usecase.NewUserUseCase(f.txManager, f.repo, f.hasher)
	return f
}

func (f *fixture) expectTx() {
	f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil).Once()
}

func strPtr(s string) *string { return &s }

func rolePtr(r domain.Role) *domain.Role { return &r }

func TestUserUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setup(t)
		users := []*domain.User{{ID: 1, Username: "alice", Role: domain.RoleUser}}
		f.repo.On("List", ctx).Return(users, nil).Once()

		got, err := f.uc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		f := setup(t)
		f.repo.On("List", ctx).Return([]*domain.User{}, nil).Once()

		_, err := f.uc.List(ctx)

		assert.ErrorIs(t, err, domain.ErrNoUsers)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Error_Repository", func(t *testing.T) {
		f := setup(t)
		f.repo.On("List", ctx).Return(nil, errors.New("db down")).Once()

		_, err := f.uc.List(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultsRoleToUser", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.hasher.On("Hash", "secret").Return("hashed").Once()
		f.repo.On("GetByUsername", ctx, "alice").Return(nil, domain.ErrUserNotFound).Once()
		f.repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "alice" && u.Password == "hashed" && u.Role == domain.RoleUser
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil).Once()

		user, err := f.uc.Create(ctx, usecase.CreateUserInput{Username: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	t.Run("Success_Admin", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.hasher.On("Hash", "secret").Return("hashed").Once()
		f.repo.On("GetByUsername", ctx, "root").Return(nil, domain.ErrUserNotFound).Once()
		f.repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		user, err := f.uc.Create(
			ctx,
			usecase.CreateUserInput{Username: "root", Password: "secret", Role: domain.RoleAdmin},
		)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	t.Run("Error_AlreadyExists", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.hasher.On("Hash", "secret").Return("hashed").Once()
		f.repo.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil).Once()

		_, err := f.uc.Create(ctx, usecase.CreateUserInput{Username: "alice", Password: "secret"})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidRole", func(t *testing.T) {
		f := setup(t)

		_, err := f.uc.Create(ctx, usecase.CreateUserInput{Username: "a", Password: "b", Role: "root"})

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("Error_LookupFails", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.hasher.On("Hash", "secret").Return("hashed").Once()
		f.repo.On("GetByUsername", ctx, "alice").Return(nil, errors.New("db down")).Once()

		_, err := f.uc.Create(ctx, usecase.CreateUserInput{Username: "alice", Password: "secret"})

		assert.EqualError(t, err, "db down")
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Username", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.repo.On("Get", ctx, int64(1)).
			Return(&domain.User{ID: 1, Username: "alice", Password: "h", Role: domain.RoleUser}, nil).Once()
		f.repo.On("GetByUsername", ctx, "alice2").Return(nil, domain.ErrUserNotFound).Once()
		f.repo.On("Update", ctx, &domain.User{ID: 1, Username: "alice2", Password: "h", Role: domain.RoleUser}).
			Return(nil).Once()

		err := f.uc.Update(ctx, 1, usecase.UpdateUserInput{Username: strPtr("alice2")})

		assert.NoError(t, err)
	})

	t.Run("Success_SameUsernameAndRehash", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.repo.On("Get", ctx, int64(1)).
			Return(&domain.User{ID: 1, Username: "alice", Password: "old", Role: domain.RoleUser}, nil).Once()
		f.hasher.On("Hash", "new").Return("new-hash").Once()
		f.repo.On("Update", ctx, &domain.User{ID: 1, Username: "alice", Password: "new-hash", Role: domain.RoleAdmin}).
			Return(nil).Once()

		err := f.uc.Update(ctx, 1, usecase.UpdateUserInput{
			Username: strPtr("alice"),
			Password: strPtr("new"),
			Role:     rolePtr(domain.RoleAdmin),
		})

		assert.NoError(t, err)
	})

	t.Run("Error_UsernameTaken", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.repo.On("Get", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil).Once()
		f.repo.On("GetByUsername", ctx, "bob").Return(&domain.User{ID: 2, Username: "bob"}, nil).Once()

		err := f.uc.Update(ctx, 1, usecase.UpdateUserInput{Username: strPtr("bob")})

		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.repo.On("Get", ctx, int64(9)).Return(nil, domain.ErrUserNotFound).Once()

		err := f.uc.Update(ctx, 9, usecase.UpdateUserInput{Username: strPtr("x")})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Error_InvalidRole", func(t *testing.T) {
		f := setup(t)
		f.expectTx()
		f.repo.On("Get", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "alice"}, nil).Once()

		err := f.uc.Update(ctx, 1, usecase.UpdateUserInput{Role: rolePtr("root")})

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("Error_Empty", func(t *testing.T) {
		f := setup(t)

		err := f.uc.Update(ctx, 1, usecase.UpdateUserInput{})

		assert.ErrorIs(t, err, domain.ErrNothingToUpdate)
	})
}

func TestUserUseCase_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	alice := &domain.User{ID: 1, Username: "alice"}

	f.repo.On("Get", ctx, int64(1)).Return(alice, nil).Once()
	f.repo.On("GetByUsername", ctx, "alice").Return(alice, nil).Once()
	f.repo.On("Delete", ctx, int64(1)).Return(nil).Once()

	got, err := f.uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	got, err = f.uc.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	assert.NoError(t, f.uc.Delete(ctx, 1))
}
