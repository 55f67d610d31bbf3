package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/cache"
	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/genre/domain"
)

const cacheDomain = "genre"

// movieCacheDomain is invalidated on delete: the schema nulls movies.genre_id.
const movieCacheDomain = "movie"

// GenreUseCase handles genre business logic with a read-through cache on Get.
type GenreUseCase struct {
	txManager    database.TxManager
	genreRepo GenreRepository
	cache        cache.Cache
}

// NewGenreUseCase creates a new GenreUseCase.
func NewGenreUseCase(
	txManager database.TxManager,
	genreRepo GenreRepository,
	c cache.Cache,
) UseCase {
	return &GenreUseCase{
		txManager:    txManager,
		genreRepo: genreRepo,
		cache:        c,
	}
}

// List returns every genre. An empty table is reported as domain.ErrNoGenres.
func (uc *GenreUseCase) List(ctx context.Context) ([]*domain.Genre, error) {
	genres, err := uc.genreRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return nil, domain.ErrNoGenres
	}
	return genres, nil
}

// Get retrieves a genre by ID.
func (uc *GenreUseCase) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	return cache.Load(ctx, uc.cache, cache.Key(cacheDomain, id), func(ctx context.Context) (*domain.Genre, error) {
		return uc.genreRepo.Get(ctx, id)
	})
}

// Create stores a new genre.
func (uc *GenreUseCase) Create(ctx context.Context, input GenreInput) (*domain.Genre, error) {
	genre := &domain.Genre{Name: input.Name}
	if err := uc.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// Update replaces the genre's fields.
func (uc *GenreUseCase) Update(ctx context.Context, id int64, input GenreInput) error {
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		genre, err := uc.genreRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		genre.Name = input.Name
		return uc.genreRepo.Update(ctx, genre)
	})
	if err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, cache.Key(cacheDomain, id))
	return nil
}

// Delete removes a genre. Movies that referenced it lose the reference.
func (uc *GenreUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.genreRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, cache.Key(cacheDomain, id))
	_ = uc.cache.DeleteDomain(ctx, movieCacheDomain)
	return nil
}
