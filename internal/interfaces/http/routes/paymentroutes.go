package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/interfaces/http/handlers"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	AuthMiddleware gin.HandlerFunc
}

// SetupPaymentRoutes configures payment routes. The callback stays outside
// the auth group: the gateway posts it server-to-browser-to-us with no
// bearer token, and the checksum is its authentication.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/api/v1/payments")
	{
		payments.POST("/callback", cfg.PaymentHandler.Callback)

		paymentsProtected := payments.Group("")
		paymentsProtected.Use(cfg.AuthMiddleware)
		{
			paymentsProtected.POST("/orders", cfg.PaymentHandler.CreateOrder)
		}
	}
}
