// Package mocks provides mock implementations of the director use case dependencies for testing.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/moviecatalog/internal/director/domain"
	"github.com/allisson/moviecatalog/internal/director/usecase"
)

// MockDirectorRepository is a mock implementation of usecase.DirectorRepository.
type MockDirectorRepository struct {
	mock.Mock
}

// NewMockDirectorRepository creates a MockDirectorRepository that asserts its expectations on cleanup.
func NewMockDirectorRepository(t *testing.T) *MockDirectorRepository {
	m := &MockDirectorRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDirectorRepository) Create(ctx context.Context, director *domain.Director) error {
	args := m.Called(ctx, director)
	return args.Error(0)
}

func (m *MockDirectorRepository) Get(ctx context.Context, id int64) (*domain.Director, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Director), args.Error(1)
}

func (m *MockDirectorRepository) List(ctx context.Context) ([]*domain.Director, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Director), args.Error(1)
}

func (m *MockDirectorRepository) Update(ctx context.Context, director *domain.Director) error {
	args := m.Called(ctx, director)
	return args.Error(0)
}

func (m *MockDirectorRepository) Delete(ctx context.Context, id int64) error {
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

func (m *MockUseCase) List(ctx context.Context) ([]*domain.Director, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Director), args.Error(1)
}

func (m *MockUseCase) Get(ctx context.Context, id int64) (*domain.Director, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Director), args.Error(1)
}

func (m *MockUseCase) Create(ctx context.Context, input usecase.DirectorInput) (*domain.Director, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Director), args.Error(1)
}

func (m *MockUseCase) Update(ctx context.Context, id int64, input usecase.DirectorInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
