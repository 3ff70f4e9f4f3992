package port

import (
	"context"

	"github.com/google/uuid"

	"claimguard/internal/domain"
)

// AnalysisRepository persists completed analysis records.
type AnalysisRepository interface {
	Create(ctx context.Context, record *domain.AnalysisRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error)
}
