package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lumira-inc/lumira/internal/interfaces/http/middleware"
	"github.com/lumira-inc/lumira/internal/interfaces/http/routes"
)

// Router configures the HTTP surface on top of a wired container.
type Router struct {
	container *Container
}

// NewRouter creates a new HTTP router from a wired container.
func NewRouter(c *Container) *Router {
	return &Router{container: c}
}

// SetupRoutes configures global middleware and all route groups.
func (r *Router) SetupRoutes() {
	c := r.container

	gin.SetMode(c.cfg.Server.Mode)

	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.hdlrs.userHandler.HealthCheck)

	authMW := middleware.Auth(c.verifier, c.log)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupStudioRoutes(c.engine, &routes.StudioRouteConfig{
		StudioHandler:  c.hdlrs.studioHandler,
		AuthMiddleware: authMW,
		RateLimit: middleware.GenerationRateLimit(
			c.rateLimiter, c.cfg.Studio.RatePerMinute, c.log,
		),
	})
	routes.SetupPaymentRoutes(c.engine, &routes.PaymentRouteConfig{
		PaymentHandler: c.hdlrs.paymentHandler,
		AuthMiddleware: authMW,
	})
}

// Engine returns the configured gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.container.engine
}
