// Package routes declares the HTTP route groups and binds them to handlers.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/v1/auth")
	auth.Use(cfg.AuthMiddleware)
	{
		auth.POST("/session", cfg.AuthHandler.SyncProfile)
	}
}
