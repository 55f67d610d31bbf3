// Package usecase implements the director business logic.
package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/director/domain"
)

// DirectorRepository defines the interface for Director persistence operations.
type DirectorRepository interface {
	Create(ctx context.Context, director *domain.Director) error
	Get(ctx context.Context, id int64) (*domain.Director, error)
	List(ctx context.Context) ([]*domain.Director, error)
	Update(ctx context.Context, director *domain.Director) error
	Delete(ctx context.Context, id int64) error
}

// DirectorInput carries the writable fields of a director.
type DirectorInput struct {
	Name string
}

// UseCase defines the interface for director business logic operations.
type UseCase interface {
	List(ctx context.Context) ([]*domain.Director, error)
	Get(ctx context.Context, id int64) (*domain.Director, error)
	Create(ctx context.Context, input DirectorInput) (*domain.Director, error)
	Update(ctx context.Context, id int64, input DirectorInput) error
	Delete(ctx context.Context, id int64) error
}
