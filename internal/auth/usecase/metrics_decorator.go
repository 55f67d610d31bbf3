package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	"github.com/allisson/moviecatalog/internal/metrics"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login attempts.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input authDomain.LoginInput,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.Login(ctx, input)
	metrics.Observe(ctx, a.metrics, "auth", "login", start, err)
	return pair, err
}

// Refresh records metrics for refresh attempts.
func (a *authUseCaseWithMetrics) Refresh(
	ctx context.Context,
	input authDomain.RefreshInput,
) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.Refresh(ctx, input)
	metrics.Observe(ctx, a.metrics, "auth", "refresh", start, err)
	return pair, err
}

// IssueTokens is not instrumented; it is covered by Login and Refresh.
func (a *authUseCaseWithMetrics) IssueTokens(user *userDomain.User) (*authDomain.TokenPair, error) {
	return a.next.IssueTokens(user)
}
