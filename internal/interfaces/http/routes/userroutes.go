package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/interfaces/http/handlers"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware gin.HandlerFunc
}

// SetupUserRoutes configures user profile routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/api/v1/users")
	users.Use(cfg.AuthMiddleware)
	{
		users.GET("/me", cfg.UserHandler.GetProfile)
		users.GET("/me/payments", cfg.UserHandler.ListPayments)
	}
}
