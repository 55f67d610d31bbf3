package usecase

import (
	"context"
	"time"

	"github.com/allisson/moviecatalog/internal/genre/domain"
	"github.com/allisson/moviecatalog/internal/metrics"
)

// genreUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type genreUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewGenreUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewGenreUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &genreUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *genreUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Genre, error) {
	start := time.Now()
	genres, err := d.next.List(ctx)
	metrics.Observe(ctx, d.metrics, cacheDomain, "list", start, err)
	return genres, err
}

func (d *genreUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	start := time.Now()
	genre, err := d.next.Get(ctx, id)
	metrics.Observe(ctx, d.metrics, cacheDomain, "get", start, err)
	return genre, err
}

func (d *genreUseCaseWithMetrics) Create(ctx context.Context, input GenreInput) (*domain.Genre, error) {
	start := time.Now()
	genre, err := d.next.Create(ctx, input)
	metrics.Observe(ctx, d.metrics, cacheDomain, "create", start, err)
	return genre, err
}

func (d *genreUseCaseWithMetrics) Update(ctx context.Context, id int64, input GenreInput) error {
	start := time.Now()
	err := d.next.Update(ctx, id, input)
	metrics.Observe(ctx, d.metrics, cacheDomain, "update", start, err)
	return err
}

func (d *genreUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	metrics.Observe(ctx, d.metrics, cacheDomain, "delete", start, err)
	return err
}
