package routes

import (
	"github.com/gin-gonic/gin"

	"modgate/internal/interfaces/http/handlers"
	"modgate/internal/interfaces/http/middleware"
)

// APIRouteConfig holds dependencies for the public authorization routes.
type APIRouteConfig struct {
	AuthorizeHandler *handlers.AuthorizeHandler
	SessionHandler   *handlers.SessionHandler
	FileHandler      *handlers.FileHandler
	RateLimiter      *middleware.RateLimiter // may be nil when Redis is disabled
}

// SetupAPIRoutes configures the public authorization routes.
func SetupAPIRoutes(engine *gin.Engine, cfg *APIRouteConfig) {
	api := engine.Group("/api")

	limit := func() gin.HandlerFunc {
		if cfg.RateLimiter != nil {
			return cfg.RateLimiter.Limit()
		}
		return func(c *gin.Context) { c.Next() }
	}()

	{
		api.POST("/authorize", limit, cfg.AuthorizeHandler.Authorize)
		api.POST("/status", limit, cfg.AuthorizeHandler.Status)
		api.POST("/verify_session", cfg.SessionHandler.VerifySession)
		api.GET("/files/:name/notes", cfg.FileHandler.Notes)
	}
}
