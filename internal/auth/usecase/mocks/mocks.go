// Package mocks provides mock implementations of the auth use case and its dependencies.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/moviecatalog/internal/auth/domain"
	userDomain "github.com/allisson/moviecatalog/internal/user/domain"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	mock.Mock
}

// NewMockAuthUseCase creates a MockAuthUseCase that asserts its expectations on cleanup.
func NewMockAuthUseCase(t *testing.T) *MockAuthUseCase {
	m := &MockAuthUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthUseCase) Login(ctx context.Context, input authDomain.LoginInput) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *MockAuthUseCase) Refresh(ctx context.Context, input authDomain.RefreshInput) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *MockAuthUseCase) IssueTokens(user *userDomain.User) (*authDomain.TokenPair, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

// MockUserFinder is a mock implementation of usecase.UserFinder.
type MockUserFinder struct {
	mock.Mock
}

// NewMockUserFinder creates a MockUserFinder that asserts its expectations on cleanup.
func NewMockUserFinder(t *testing.T) *MockUserFinder {
	m := &MockUserFinder{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserFinder) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}
