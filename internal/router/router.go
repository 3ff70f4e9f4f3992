package router

import (
	"github.com/gin-gonic/gin"

	"claimguard/internal/config"
	"claimguard/internal/handler"
	"claimguard/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analysisH *handler.AnalysisHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Analysis routes
	analyses := v1.Group("/analyses")
	analyses.POST("", analysisH.Submit)
	analyses.GET("", analysisH.List)
	analyses.GET("/:id", analysisH.GetByID)
	analyses.GET("/:id/export", analysisH.Export)

	// Deterministic sample report, served without touching the live path
	v1.GET("/sample-report", analysisH.Sample)

	return r
}
