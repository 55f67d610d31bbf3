// Package usecase implements the movie business logic.
package usecase

import (
	"context"

	directorDomain "github.com/allisson/moviecatalog/internal/director/domain"
	genreDomain "github.com/allisson/moviecatalog/internal/genre/domain"
	"github.com/allisson/moviecatalog/internal/movie/domain"
)

// MovieRepository defines the interface for Movie persistence operations.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	// List applies at most one filter field; callers pass Filter.Effective().
	List(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
}

// DirectorLookup resolves movie director references.
type DirectorLookup interface {
	Get(ctx context.Context, id int64) (*directorDomain.Director, error)
}

// GenreLookup resolves movie genre references.
type GenreLookup interface {
	Get(ctx context.Context, id int64) (*genreDomain.Genre, error)
}

// MovieInput carries the writable fields of a movie. Update replaces all of them.
type MovieInput struct {
	Title       string
	Description string
	Trailer     string
	Year        int
	Rating      float64
	GenreID     *int64
	DirectorID  *int64
}

// UseCase defines the interface for movie business logic operations.
type UseCase interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	ListFiltered(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error)
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, input MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id int64, input MovieInput) error
	Delete(ctx context.Context, id int64) error
}
