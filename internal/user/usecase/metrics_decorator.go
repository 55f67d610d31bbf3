package usecase

import (
	"context"
	"time"

	"github.com/allisson/moviecatalog/internal/metrics"
	"github.com/allisson/moviecatalog/internal/user/domain"
)

const metricsDomain = "user"

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) List(ctx context.Context) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx)
	metrics.Observe(ctx, u.metrics, metricsDomain, "list", start, err)
	return users, err
}

func (u *userUseCaseWithMetrics) Get(ctx context.Context, id int64) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, id)
	metrics.Observe(ctx, u.metrics, metricsDomain, "get", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByUsername(ctx, username)
	metrics.Observe(ctx, u.metrics, metricsDomain, "get_by_username", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "create", start, err)
	return user, err
}

func (u *userUseCaseWithMetrics) Update(ctx context.Context, id int64, input UpdateUserInput) error {
	start := time.Now()
	err := u.next.Update(ctx, id, input)
	metrics.Observe(ctx, u.metrics, metricsDomain, "update", start, err)
	return err
}

func (u *userUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	metrics.Observe(ctx, u.metrics, metricsDomain, "delete", start, err)
	return err
}
