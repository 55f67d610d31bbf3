// Package mocks provides mock implementations of the movie use case dependencies for testing.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	directorDomain "github.com/allisson/moviecatalog/internal/director/domain"
	genreDomain "github.com/allisson/moviecatalog/internal/genre/domain"
	"github.com/allisson/moviecatalog/internal/movie/domain"
	"github.com/allisson/moviecatalog/internal/movie/usecase"
)

// MockMovieRepository is a mock implementation of usecase.MovieRepository.
type MockMovieRepository struct {
	mock.Mock
}

// NewMockMovieRepository creates a MockMovieRepository that asserts its expectations on cleanup.
func NewMockMovieRepository(t *testing.T) *MockMovieRepository {
	m := &MockMovieRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDirectorLookup is a mock implementation of usecase.DirectorLookup.
type MockDirectorLookup struct {
	mock.Mock
}

// NewMockDirectorLookup creates a MockDirectorLookup that asserts its expectations on cleanup.
func NewMockDirectorLookup(t *testing.T) *MockDirectorLookup {
	m := &MockDirectorLookup{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDirectorLookup) Get(ctx context.Context, id int64) (*directorDomain.Director, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directorDomain.Director), args.Error(1)
}

// MockGenreLookup is a mock implementation of usecase.GenreLookup.
type MockGenreLookup struct {
	mock.Mock
}

// NewMockGenreLookup creates a MockGenreLookup that asserts its expectations on cleanup.
func NewMockGenreLookup(t *testing.T) *MockGenreLookup {
	m := &MockGenreLookup{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGenreLookup) Get(ctx context.Context, id int64) (*genreDomain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genreDomain.Genre), args.Error(1)
}

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// NewMockUseCase creates a MockUseCase that asserts its expectations on cleanup.
func NewMockUseCase(t *testing.T) *MockUseCase {
	m := &MockUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUseCase) List(ctx context.Context) ([]*domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockUseCase) ListFiltered(ctx context.Context, filter domain.Filter) ([]*domain.Movie, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movie), args.Error(1)
}

func (m *MockUseCase) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockUseCase) Create(ctx context.Context, input usecase.MovieInput) (*domain.Movie, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockUseCase) Update(ctx context.Context, id int64, input usecase.MovieInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
