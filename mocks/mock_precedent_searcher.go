package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jurisflow/internal/domain"
)

// MockPrecedentSearcher is a mock implementation of port.PrecedentSearcher.
type MockPrecedentSearcher struct {
	mock.Mock
}

func (m *MockPrecedentSearcher) Search(ctx context.Context, query domain.PrecedentQuery) (*domain.PrecedentResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrecedentResult), args.Error(1)
}
