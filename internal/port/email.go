package port

import (
	"context"

	"claimguard/internal/domain"
)

// EmailSender defines the contract for delivering report summaries.
type EmailSender interface {
	SendReportEmail(ctx context.Context, toEmail, toName string, result *domain.AnalysisResult) error
}
