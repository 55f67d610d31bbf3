package usecase

import (
	"context"
	"time"

	"github.com/allisson/moviecatalog/internal/director/domain"
	"github.com/allisson/moviecatalog/internal/metrics"
)

// directorUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type directorUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewDirectorUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewDirectorUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &directorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *directorUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Director, error) {
	start := time.Now()
	directors, err := d.next.List(ctx)
	metrics.Observe(ctx, d.metrics, cacheDomain, "list", start, err)
	return directors, err
}

func (d *directorUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.Director, error) {
	start := time.Now()
	director, err := d.next.Get(ctx, id)
	metrics.Observe(ctx, d.metrics, cacheDomain, "get", start, err)
	return director, err
}

func (d *directorUseCaseWithMetrics) Create(ctx context.Context, input DirectorInput) (*domain.Director, error) {
	start := time.Now()
	director, err := d.next.Create(ctx, input)
	metrics.Observe(ctx, d.metrics, cacheDomain, "create", start, err)
	return director, err
}

func (d *directorUseCaseWithMetrics) Update(ctx context.Context, id int64, input DirectorInput) error {
	start := time.Now()
	err := d.next.Update(ctx, id, input)
	metrics.Observe(ctx, d.metrics, cacheDomain, "update", start, err)
	return err
}

func (d *directorUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	metrics.Observe(ctx, d.metrics, cacheDomain, "delete", start, err)
	return err
}
