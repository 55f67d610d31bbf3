// Package usecase implements the genre business logic.
package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/genre/domain"
)

// GenreRepository defines the interface for Genre persistence operations.
type GenreRepository interface {
	Create(ctx context.Context, genre *domain.Genre) error
	Get(ctx context.Context, id int64) (*domain.Genre, error)
	List(ctx context.Context) ([]*domain.Genre, error)
	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, id int64) error
}

// GenreInput carries the writable fields of a genre.
type GenreInput struct {
	Name string
}

// UseCase defines the interface for genre business logic operations.
type UseCase interface {
	List(ctx context.Context) ([]*domain.Genre, error)
	Get(ctx context.Context, id int64) (*domain.Genre, error)
	Create(ctx context.Context, input GenreInput) (*domain.Genre, error)
	Update(ctx context.Context, id int64, input GenreInput) error
	Delete(ctx context.Context, id int64) error
}
