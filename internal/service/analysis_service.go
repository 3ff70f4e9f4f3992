package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"claimguard/internal/config"
	"claimguard/internal/domain"
	"claimguard/internal/port"
)

// AnalysisSubmitInput is the DTO for analysis submissions.
type AnalysisSubmitInput struct {
	File        multipart.File
	Header      *multipart.FileHeader
	User        domain.UserContext
	NotifyEmail string
}

// AnalysisService defines the policy analysis workflow contract.
type AnalysisService interface {
	Submit(ctx context.Context, input AnalysisSubmitInput) (*domain.AnalysisRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error)
	DownloadURL(ctx context.Context, record *domain.AnalysisRecord) (string, error)
	Sample() *domain.AnalysisResult
}

type analysisService struct {
	repo         port.AnalysisRepository
	storage      port.ObjectStorage
	analyzer     port.PolicyAnalyzer
	email        port.EmailSender
	cfg          *config.S3Config
	fallbackOnly bool
}

// NewAnalysisService creates a new AnalysisService implementation. When
// fallbackOnly is set (no usable API key) the live path is skipped entirely.
func NewAnalysisService(
	repo port.AnalysisRepository,
	storage port.ObjectStorage,
	analyzer port.PolicyAnalyzer,
	email port.EmailSender,
	cfg *config.S3Config,
	fallbackOnly bool,
) AnalysisService {
	return &analysisService{
		repo:         repo,
		storage:      storage,
		analyzer:     analyzer,
		email:        email,
		cfg:          cfg,
		fallbackOnly: fallbackOnly,
	}
}

// Submit runs one analysis request end to end: validate the upload, archive
// the document, analyze it, persist the report. A failure on the live
// analysis path is never surfaced; the fallback result is substituted so the
// caller always receives a complete report card.
func (s *analysisService) Submit(ctx context.Context, input AnalysisSubmitInput) (*domain.AnalysisRecord, error) {
	if strings.TrimSpace(input.User.Name) == "" || input.User.Age <= 0 {
		return nil, domain.ErrInvalidUserContext
	}

	contentType, err := s.validateFile(input)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	analysisID := uuid.New()
	record := &domain.AnalysisRecord{
		ID:          analysisID,
		UserName:    input.User.Name,
		UserAge:     input.User.Age,
		Conditions:  strings.Join(input.User.Conditions, ", "),
		FileName:    input.Header.Filename,
		ContentType: contentType,
		FileSize:    input.Header.Size,
	}

	// Archive the document. Losing the stored copy degrades the download
	// link, not the analysis, so a failure here is logged and skipped.
	s3Key := fmt.Sprintf("policies/%s/%s", analysisID, input.Header.Filename)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(raw),
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("analysisService.Submit: document upload failed for %s: %v", analysisID, err)
	} else {
		record.S3Bucket = s.cfg.Bucket
		record.S3Key = s3Key
	}

	result := s.runAnalysis(ctx, raw, contentType, input.User)
	record.ModelUsed = result.ModelUsed
	record.IsRealAnalysis = result.IsRealAnalysis

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshaling analysis result: %w", err)
	}
	record.Result = payload

	if err := s.repo.Create(ctx, record); err != nil {
		// Best-effort cleanup of the orphaned document copy.
		if record.S3Key != "" {
			if delErr := s.storage.Delete(ctx, record.S3Bucket, record.S3Key); delErr != nil {
				log.Printf("analysisService.Submit: cleanup of %s failed: %v", record.S3Key, delErr)
			}
		}
		return nil, err
	}

	if input.NotifyEmail != "" {
		if err := s.email.SendReportEmail(ctx, input.NotifyEmail, input.User.Name, result); err != nil {
			log.Printf("analysisService.Submit: report email to %s failed: %v", input.NotifyEmail, err)
		}
	}

	return record, nil
}

// runAnalysis drives the live pipeline and substitutes the fallback result
// on any terminal failure or when running in fallback-only mode.
func (s *analysisService) runAnalysis(ctx context.Context, raw []byte, contentType string, user domain.UserContext) *domain.AnalysisResult {
	if s.fallbackOnly {
		log.Printf("analysisService.runAnalysis: no API key configured, serving fallback analysis")
		return s.analyzer.Fallback()
	}

	result, err := s.analyzer.Analyze(ctx, port.AnalyzeInput{
		Document:    bytes.NewReader(raw),
		ContentType: contentType,
		User:        user,
	})
	if err != nil {
		log.Printf("analysisService.runAnalysis: live analysis failed, serving fallback: %v", err)
		return s.analyzer.Fallback()
	}
	return result
}

// validateFile checks extension, size, and magic-byte content type, and
// rewinds the upload for the subsequent full read.
func (s *analysisService) validateFile(input AnalysisSubmitInput) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return "", domain.ErrFileTooLarge
	}

	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if _, valid := domain.AllowedContentTypes[detectedType]; !valid {
		return "", domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking file: %w", err)
	}

	return domain.AllowedFileTypes[fileType], nil
}

func (s *analysisService) GetByID(ctx context.Context, id uuid.UUID) (*domain.AnalysisRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *analysisService) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

// DownloadURL presigns a download link for the record's stored document copy.
// It never hits the repository; callers pass the record they already hold.
func (s *analysisService) DownloadURL(ctx context.Context, record *domain.AnalysisRecord) (string, error) {
	if record.S3Key == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, record.S3Bucket, record.S3Key, s.cfg.PresignExpiry)
}

// Sample returns the deterministic fallback report card; it always succeeds.
func (s *analysisService) Sample() *domain.AnalysisResult {
	return s.analyzer.Fallback()
}
