package server

import (
	"github.com/gin-gonic/gin"

	"resume-engine/internal/analyses"
	"resume-engine/internal/matching"
	"resume-engine/internal/services/health"
	"resume-engine/internal/shared/config"
	"resume-engine/internal/shared/metrics"
	"resume-engine/internal/shared/server/middleware"
	"resume-engine/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	if cfg.Env == "production" || cfg.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	healthSvc := health.NewService()
	analysisSvc := analyses.NewService(analyses.Limits{MinChars: cfg.MinTextChars, MaxBytes: cfg.MaxTextBytes})
	matchSvc := matching.NewService(cfg.MaxTextBytes)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	analyses.NewHandler(analysisSvc).RegisterRoutes(api)
	matching.NewHandler(matchSvc).RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
