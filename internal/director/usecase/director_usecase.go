package usecase

import (
	"context"

	"github.com/allisson/moviecatalog/internal/cache"
	"github.com/allisson/moviecatalog/internal/database"
	"github.com/allisson/moviecatalog/internal/director/domain"
)

const cacheDomain = "director"

// movieCacheDomain is invalidated on delete: the schema nulls movies.director_id.
const movieCacheDomain = "movie"

// DirectorUseCase handles director business logic with a read-through cache on Get.
type DirectorUseCase struct {
	txManager    database.TxManager
	directorRepo DirectorRepository
	cache        cache.Cache
}

// NewDirectorUseCase creates a new DirectorUseCase.
func NewDirectorUseCase(
	txManager database.TxManager,
	directorRepo DirectorRepository,
	c cache.Cache,
) UseCase {
	return &DirectorUseCase{
		txManager:    txManager,
		directorRepo: directorRepo,
		cache:        c,
	}
}

// List returns every director. An empty table is reported as domain.ErrNoDirectors.
func (uc *DirectorUseCase) List(ctx context.Context) ([]*domain.Director, error) {
	directors, err := uc.directorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(directors) == 0 {
		return nil, domain.ErrNoDirectors
	}
	return directors, nil
}

// Get retrieves a director by ID.
func (uc *DirectorUseCase) Get(ctx context.Context, id int64) (*domain.Director, error) {
	return cache.Load(ctx, uc.cache, cache.Key(cacheDomain, id), func(ctx context.Context) (*domain.Director, error) {
		return uc.directorRepo.Get(ctx, id)
	})
}

// Create stores a new director.
func (uc *DirectorUseCase) Create(ctx context.Context, input DirectorInput) (*domain.Director, error) {
	director := &domain.Director{Name: input.Name}
	if err := uc.directorRepo.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

// Update replaces the director's fields.
func (uc *DirectorUseCase) Update(ctx context.Context, id int64, input DirectorInput) error {
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		director, err := uc.directorRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		director.Name = input.Name
		return uc.directorRepo.Update(ctx, director)
	})
	if err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, cache.Key(cacheDomain, id))
	return nil
}

// Delete removes a director. Movies that referenced it lose the reference.
func (uc *DirectorUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.directorRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, cache.Key(cacheDomain, id))
	_ = uc.cache.DeleteDomain(ctx, movieCacheDomain)
	return nil
}
