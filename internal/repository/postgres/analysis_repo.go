package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"claimguard/internal/domain"
	"claimguard/internal/port"
)

type analysisRepo struct {
	db *sqlx.DB
}

// NewAnalysisRepo creates a new PostgreSQL-backed AnalysisRepository.
func NewAnalysisRepo(db *sqlx.DB) port.AnalysisRepository {
	return &analysisRepo{db: db}
}

func (r *analysisRepo) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO analyses
		(id, user_name, user_age, conditions, file_name, content_type, file_size,
		 s3_bucket, s3_key, result, model_used, is_real_analysis, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.UserName, record.UserAge, record.Conditions,
		record.FileName, record.ContentType, record.FileSize,
		record.S3Bucket, record.S3Key, record.Result,
		record.ModelUsed, record.IsRealAnalysis, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("analysisRepo.Create: %w", err)
	}
	return nil
}

func (r *analysisRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM analyses WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("analysisRepo.GetByID: %w", err)
	}
	return &record, nil
}

func (r *analysisRepo) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM analyses")
	if err != nil {
		return nil, 0, fmt.Errorf("analysisRepo.List count: %w", err)
	}

	var records []domain.AnalysisRecord
	err = r.db.SelectContext(ctx, &records,
		"SELECT * FROM analyses ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("analysisRepo.List: %w", err)
	}
	return records, total, nil
}
