package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jurisflow/internal/domain"
)

// MockExtractionCache is a mock implementation of port.ExtractionCache.
type MockExtractionCache struct {
	mock.Mock
}

func (m *MockExtractionCache) Get(ctx context.Context, key string) (*domain.ExtractionResult, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Bool(1), args.Error(2)
}

func (m *MockExtractionCache) Set(ctx context.Context, key string, result *domain.ExtractionResult, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

func (m *MockExtractionCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExtractionCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
