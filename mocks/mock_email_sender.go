package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"claimguard/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendReportEmail(ctx context.Context, toEmail, toName string, result *domain.AnalysisResult) error {
	args := m.Called(ctx, toEmail, toName, result)
	return args.Error(0)
}
