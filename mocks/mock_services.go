package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"jurisflow/internal/domain"
	"jurisflow/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, input service.ExtractInput) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) AnalyzeFIRAC(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

// MockPrecedentService is a mock implementation of service.PrecedentService.
type MockPrecedentService struct {
	mock.Mock
}

func (m *MockPrecedentService) Search(ctx context.Context, input service.SearchInput) (*domain.PrecedentResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrecedentResult), args.Error(1)
}

// MockDistinguishService is a mock implementation of service.DistinguishService.
type MockDistinguishService struct {
	mock.Mock
}

func (m *MockDistinguishService) Analyze(ctx context.Context, currentFacts string, precedent json.RawMessage) (*domain.DistinguishResult, error) {
	args := m.Called(ctx, currentFacts, precedent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistinguishResult), args.Error(1)
}

// MockDraftingService is a mock implementation of service.DraftingService.
type MockDraftingService struct {
	mock.Mock
}

func (m *MockDraftingService) Draft(ctx context.Context, kind domain.DocumentKind, caseData json.RawMessage) (*domain.DraftResult, error) {
	args := m.Called(ctx, kind, caseData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftResult), args.Error(1)
}

// MockHealthService is a mock implementation of service.HealthService.
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) map[string]bool {
	args := m.Called(ctx)
	return args.Get(0).(map[string]bool)
}

func (m *MockHealthService) Ready(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
