// Package mocks provides mock implementations of the metrics interfaces for testing.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBusinessMetrics is a mock implementation of metrics.BusinessMetrics.
type MockBusinessMetrics struct {
	mock.Mock
}

// NewMockBusinessMetrics creates a MockBusinessMetrics that asserts its expectations on cleanup.
func NewMockBusinessMetrics(t *testing.T) *MockBusinessMetrics {
	m := &MockBusinessMetrics{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// RecordOperation mocks the RecordOperation method of BusinessMetrics.
func (m *MockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

// RecordDuration mocks the RecordDuration method of BusinessMetrics.
// The duration is not passed to the expectation since it is never deterministic.
func (m *MockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, status)
}

// ExpectObserve registers the pair of calls made by metrics.Observe.
func (m *MockBusinessMetrics) ExpectObserve(domain, operation, status string) {
	m.On("RecordOperation", mock.Anything, domain, operation, status).Once()
	m.On("RecordDuration", mock.Anything, domain, operation, status).Once()
}
