// Package mocks provides mock implementations of the genre use case dependencies for testing.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/moviecatalog/internal/genre/domain"
	"github.com/allisson/moviecatalog/internal/genre/usecase"
)

// MockGenreRepository is a mock implementation of usecase.GenreRepository.
type MockGenreRepository struct {
	mock.Mock
}

// NewMockGenreRepository creates a MockGenreRepository that asserts its expectations on cleanup.
func NewMockGenreRepository(t *testing.T) *MockGenreRepository {
	m := &MockGenreRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}

func (m *MockGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func (m *MockUseCase) List(ctx context.Context) ([]*domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Genre), args.Error(1)
}

func (m *MockUseCase) Get(ctx context.Context, id int64) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockUseCase) Create(ctx context.Context, input usecase.GenreInput) (*domain.Genre, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockUseCase) Update(ctx context.Context, id int64, input usecase.GenreInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
