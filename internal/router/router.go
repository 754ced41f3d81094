package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "jurisflow/docs" // registers the OpenAPI document
	"jurisflow/internal/config"
	"jurisflow/internal/handler"
	"jurisflow/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	documentH *handler.DocumentHandler,
	analysisH *handler.AnalysisHandler,
	precedentH *handler.PrecedentHandler,
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
	r.GET("/health", healthH.Health)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes; the auth middleware is a no-op without a secret
	protected := r.Group("")
	protected.Use(middleware.JWTAuth(&cfg.Auth))

	v1 := protected.Group("/api/v1")

	documents := v1.Group("/documents")
	documents.POST("/extract", documentH.Extract)
	documents.POST("/draft", documentH.Draft)

	analysis := v1.Group("/analysis")
	analysis.POST("/firac", analysisH.FIRAC)
	analysis.POST("/distinguish", analysisH.Distinguish)

	precedents := v1.Group("/precedents")
	precedents.POST("/search", precedentH.Search)
	precedents.POST("/search/export", precedentH.Export)

	if cfg.Server.LegacyRoutes {
		protected.POST("/extract-pdf", documentH.Extract)
		protected.POST("/firac-analysis", analysisH.FIRAC)
		protected.POST("/datajud-search", precedentH.Search)
		protected.POST("/distinguish-analysis", analysisH.Distinguish)
		protected.POST("/generate-document", documentH.Draft)
	}

	return r
}
