package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/cache"
	"github.com/allisson/moviecatalog/internal/database"
	directorDomain "github.com/allisson/moviecatalog/internal/director/domain"
	apperrors "github.com/allisson/moviecatalog/internal/errors"
	genreDomain "github.com/allisson/moviecatalog/internal/genre/domain"
	"github.com/allisson/moviecatalog/internal/movie/domain"
)

const cacheDomain = "movie"

// MovieUseCase handles movie business logic. Director and genre references are
// checked through their lookups before any write.
type MovieUseCase struct {
	txManager database.TxManager
	movieRepo MovieRepository
	directors DirectorLookup
	genres    GenreLookup
	cache     cache.Cache
}

// NewMovieUseCase creates a new MovieUseCase.
func NewMovieUseCase(
	txManager database.TxManager,
	movieRepo MovieRepository,
	directors DirectorLookup,
	genres GenreLookup,
	c cache.Cache,
) UseCase {
	return &MovieUseCase{
		txManager: txManager,
		movieRepo: movieRepo,
		directors: directors,
		genres:    genres,
		cache:     c,
	}
}

// List returns every movie.
func (uc *MovieUseCase) List(ctx context.Context) ([]*domain.Movie, error) {
	return uc.ListFiltered(ctx, domain.Filter{})
}

// ListFiltered returns the movies matching the highest-precedence filter field.
// An empty result is reported as domain.ErrNoMovies.
func (uc *MovieUseCase) ListFiltered(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error) {
	movies, err := uc.movieRepo.List(ctx, filter.Effective())
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNoMovies
	}
	return movies, nil
}

// Get retrieves a movie by ID.
func (uc *MovieUseCase) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	return cache.Load(ctx, uc.cache, cache.Key(cacheDomain, id), func(ctx context.Context) (*domain.Movie, error) {
		return uc.movieRepo.Get(ctx, id)
	})
}

// Create stores a new movie after checking its references.
func (uc *MovieUseCase) Create(ctx context.Context, input MovieInput) (*domain.Movie, error) {
	if err := uc.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	movie := &domain.Movie{}
	apply(movie, input)

	if err := uc.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Update replaces every writable field of an existing movie.
func (uc *MovieUseCase) Update(ctx context.Context, id int64, input MovieInput) error {
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		movie, err := uc.movieRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		if err := uc.checkReferences(ctx, input); err != nil {
			return err
		}

		apply(movie, input)
		return uc.movieRepo.Update(ctx, movie)
	})
	if err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, cache.Key(cacheDomain, id))
	return nil
}

// Delete removes a movie by ID.
func (uc *MovieUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.movieRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, cache.Key(cacheDomain, id))
	return nil
}

func (uc *MovieUseCase) checkReferences(ctx context.Context, input MovieInput) error {
	if input.DirectorID != nil {
		if _, err := uc.directors.Get(ctx, *input.DirectorID); err != nil {
			if apperrors.Is(err, directorDomain.ErrDirectorNotFound) {
				return domain.ErrUnknownDirector
			}
			return err
		}
	}

	if input.GenreID != nil {
		if _, err := uc.genres.Get(ctx, *input.GenreID); err != nil {
			if apperrors.Is(err, genreDomain.ErrGenreNotFound) {
				return domain.ErrUnknownGenre
			}
			return err
		}
	}

	return nil
}

func apply(movie *domain.Movie, input MovieInput) {
	movie.Title = input.Title
	movie.Description = input.Description
	movie.Trailer = input.Trailer
	movie.Year = input.Year
	movie.Rating = input.Rating
	movie.GenreID = input.GenreID
	movie.DirectorID = input.DirectorID
}
