package port

import (
	"context"
	"io"

	"claimguard/internal/domain"
)

// AnalyzeInput carries one policy document and the policyholder context.
type AnalyzeInput struct {
	Document    io.Reader
	ContentType string
	User        domain.UserContext
}

// PolicyAnalyzer abstracts the model-backed policy analysis pipeline.
// Analyze never returns a partially-populated result; Fallback always
// succeeds and is safe to substitute after any Analyze failure.
type PolicyAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalysisResult, error)
	Fallback() *domain.AnalysisResult
}
