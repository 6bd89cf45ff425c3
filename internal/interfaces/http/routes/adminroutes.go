package routes

import (
	"github.com/gin-gonic/gin"

	"modgate/internal/infrastructure/auth"
	"modgate/internal/interfaces/http/handlers"
	"modgate/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the administrative routes.
type AdminRouteConfig struct {
	AdminHandler *handlers.AdminHandler
	FileHandler  *handlers.FileHandler
	AdminTokens  *auth.AdminTokenService
	RateLimiter  *middleware.RateLimiter // may be nil when Redis is disabled
}

// SetupAdminRoutes configures the administrative routes. Everything except
// login requires a bearer admin token.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")

	if cfg.RateLimiter != nil {
		admin.POST("/login", cfg.RateLimiter.Limit(), cfg.AdminHandler.Login)
	} else {
		admin.POST("/login", cfg.AdminHandler.Login)
	}

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(cfg.AdminTokens))
	{
		protected.POST("/keys", cfg.AdminHandler.CreateKeys)
		protected.GET("/keys", cfg.AdminHandler.ListKeys)
		protected.DELETE("/sessions/:account", cfg.AdminHandler.RevokeSession)

		protected.PUT("/files/:name", cfg.FileHandler.Upsert)
		protected.GET("/files", cfg.FileHandler.List)
		protected.DELETE("/files/:name", cfg.FileHandler.Delete)
	}
}
