package noop

import (
	"context"
	"log"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs report deliveries to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReportEmail(_ context.Context, toEmail, toName string, result *domain.AnalysisResult) error {
	log.Printf("[NOOP EMAIL] Report for %s (%s): %d/%d scenarios covered, %d recommendations",
		toName, toEmail, result.VulnerabilityScore, result.TotalScenarios, len(result.Recommendations))
	return nil
}
