package main

import (
	"fmt"
	"log"

	"claimguard/internal/analyzer"
	"claimguard/internal/config"
	"claimguard/internal/email/noop"
	"claimguard/internal/email/ses"
	"claimguard/internal/handler"
	"claimguard/internal/port"
	"claimguard/internal/repository/postgres"
	"claimguard/internal/router"
	"claimguard/internal/service"
	s3storage "claimguard/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	analysisRepo := postgres.NewAnalysisRepo(db)

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	analyzerCfg := analyzer.Config{
		APIKey:  cfg.Gemini.APIKey,
		Timeout: cfg.Gemini.Timeout(),
	}
	if analyzerCfg.FallbackOnly() {
		log.Printf("no Gemini API key configured; serving fallback analyses only")
	}
	client := analyzer.NewClient(analyzerCfg)

	analysisSvc := service.NewAnalysisService(
		analysisRepo, s3Client, client, emailSender, &cfg.S3, analyzerCfg.FallbackOnly())

	analysisH := handler.NewAnalysisHandler(analysisSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, analysisH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
