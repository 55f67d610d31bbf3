// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/user/domain"
)

// UserRepository defines the interface for User persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(plaintext string) string
}

// CreateUserInput contains the data required to register a user.
// An empty Role defaults to domain.RoleUser.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *domain.Role
}

// IsEmpty reports whether the update carries no fields.
func (in UpdateUserInput) IsEmpty() bool {
	return in.Username == nil && in.Password == nil && in.Role == nil
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) error
	Delete(ctx context.Context, id int64) error
}
