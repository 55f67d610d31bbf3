package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/database"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	"github.com/allisson/moviecatalog/internal/user/domain"
)

// UserUseCase handles user-related business logic.
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher PasswordHasher
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordHasher PasswordHasher,
) UseCase {
	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}

// List returns every user. An empty table is reported as domain.ErrNoUsers.
func (uc *UserUseCase) List(ctx context.Context) ([]*domain.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users, nil
}

// Get retrieves a user by ID.
func (uc *UserUseCase) Get(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.Get(ctx, id)
}

// GetByUsername retrieves a user by username.
func (uc *UserUseCase) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}

// Create registers a new user with a hashed password.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user := &domain.User{
		Username: input.Username,
		Password: uc.passwordHasher.Hash(input.Password),
		Role:     role,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		_, err := uc.userRepo.GetByUsername(ctx, input.Username)
		if err == nil {
			return domain.ErrUserAlreadyExists
		}
		if !apperrors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return uc.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies a partial update. A username held by a different user is
// rejected; a new password is re-hashed.
func (uc *UserUseCase) Update(ctx context.Context, id int64, input UpdateUserInput) error {
	if input.IsEmpty() {
		return domain.ErrNothingToUpdate
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		user, err := uc.userRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		if input.Username != nil && *input.Username != user.Username {
			existing, err := uc.userRepo.GetByUsername(ctx, *input.Username)
			switch {
			case err == nil && existing.ID != id:
				return domain.ErrUsernameTaken
			case err != nil && !apperrors.Is(err, domain.ErrUserNotFound):
				return err
			}
			user.Username = *input.Username
		}

		if input.Password != nil {
			user.Password = uc.passwordHasher.Hash(*input.Password)
		}

		if input.Role != nil {
			role := *input.Role
			if role == "" {
				role = domain.RoleUser
			}
			if !role.Valid() {
				return domain.ErrInvalidRole
			}
			user.Role = role
		}

		return uc.userRepo.Update(ctx, user)
	})
}

// Delete removes a user by ID.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.userRepo.Delete(ctx, id)
}
