package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	metricsMocks "github.com/allisson/moviecatalog/internal/metrics/mocks"
	"github.com/allisson/moviecatalog/internal/movie/domain"
	"github.com/allisson/moviecatalog/internal/movie/usecase"
	"github.com/allisson/moviecatalog/internal/movie/usecase/mocks"
)

func TestMovieUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockUseCase(t)
	m := metricsMocks.NewMockBusinessMetrics(t)
	uc := usecase.NewMovieUseCaseWithMetrics(next, m)

	movie := &domain.Movie{ID: 1, Title: "Heat"}
	filter := domain.Filter{Year: intPtr(1995)}
	input := usecase.MovieInput{Title: "Heat"}

	next.On("List", ctx).Return([]*domain.Movie{movie}, nil).Once()
	next.On("ListFiltered", ctx, filter).Return(nil, domain.ErrNoMovies).Once()
	next.On("Get", ctx, int64(1)).Return(movie, nil).Once()
	next.On("Create", ctx, input).Return(nil, domain.ErrUnknownDirector).Once()
	next.On("Update", ctx, int64(1), input).Return(nil).Once()
	next.On("Delete", ctx, int64(1)).Return(nil).Once()

	m.ExpectObserve("movie", "list", "success")
	m.ExpectObserve("movie", "list", "error")
	m.ExpectObserve("movie", "get", "success")
	m.ExpectObserve("movie", "create", "error")
	m.ExpectObserve("movie", "update", "success")
	m.ExpectObserve("movie", "delete", "success")

	_, err := uc.List(ctx)
	assert.NoError(t, err)
	_, err = uc.ListFiltered(ctx, filter)
	assert.ErrorIs(t, err, domain.ErrNoMovies)
	_, err = uc.Get(ctx, 1)
	assert.NoError(t, err)
	_, err = uc.Create(ctx, input)
	assert.ErrorIs(t, err, domain.ErrUnknownDirector)
	assert.NoError(t, uc.Update(ctx, 1, input))
	assert.NoError(t, uc.Delete(ctx, 1))
}
