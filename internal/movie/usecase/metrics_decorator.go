package usecase

import (
	"context"
	"time"

	"github.com/allisson/moviecatalog/internal/metrics"
	"github.com/allisson/moviecatalog/internal/movie/domain"
)

type movieUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewMovieUseCaseWithMetrics wraps a UseCase with metrics recording.
// List and ListFiltered are both reported as "list".
func NewMovieUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &movieUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *movieUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Movie, error) {
	start := time.Now()
	movies, err := u.next.List(ctx)
	metrics.Observe(ctx, u.metrics, cacheDomain, "list", start, err)
	return movies, err
}

func (u *movieUseCaseWithMetrics) ListFiltered(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error) {
	start := time.Now()
	movies, err := u.next.ListFiltered(ctx, filter)
	metrics.Observe(ctx, u.metrics, cacheDomain, "list", start, err)
	return movies, err
}

func (u *movieUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	start := time.Now()
	movie, err := u.next.Get(ctx, id)
	metrics.Observe(ctx, u.metrics, cacheDomain, "get", start, err)
	return movie, err
}

func (u *movieUseCaseWithMetrics) Create(ctx context.Context, input MovieInput) (*domain.Movie, error) {
	start := time.Now()
	movie, err := u.next.Create(ctx, input)
	metrics.Observe(ctx, u.metrics, cacheDomain, "create", start, err)
	return movie, err
}

func (u *movieUseCaseWithMetrics) Update(ctx context.Context, id int64, input MovieInput) error {
	start := time.Now()
	err := u.next.Update(ctx, id, input)
	metrics.Observe(ctx, u.metrics, cacheDomain, "update", start, err)
	return err
}

func (u *movieUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	metrics.Observe(ctx, u.metrics, cacheDomain, "delete", start, err)
	return err
}
