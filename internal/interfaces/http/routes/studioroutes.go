package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/interfaces/http/handlers"
)

// StudioRouteConfig holds dependencies for studio routes.
type StudioRouteConfig struct {
	StudioHandler  *handlers.StudioHandler
	AuthMiddleware gin.HandlerFunc
	RateLimit      gin.HandlerFunc
}

// SetupStudioRoutes configures concept, generation and history routes. The
// model-backed endpoints carry the per-user rate limit; history does not.
func SetupStudioRoutes(engine *gin.Engine, cfg *StudioRouteConfig) {
	studio := engine.Group("/api/v1/studio")
	studio.Use(cfg.AuthMiddleware)
	{
		studio.POST("/concepts", cfg.RateLimit, cfg.StudioHandler.ProposeConcept)
		studio.POST("/generations", cfg.RateLimit, cfg.StudioHandler.GenerateImages)
		studio.GET("/generations", cfg.StudioHandler.ListHistory)
	}
}
