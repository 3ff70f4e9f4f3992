package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// MockPolicyAnalyzer is a mock implementation of port.PolicyAnalyzer.
type MockPolicyAnalyzer struct {
	mock.Mock
}

func (m *MockPolicyAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*domain.AnalysisResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisResult), args.Error(1)
}

func (m *MockPolicyAnalyzer) Fallback() *domain.AnalysisResult {
	args := m.Called()
	return args.Get(0).(*domain.AnalysisResult)
}
