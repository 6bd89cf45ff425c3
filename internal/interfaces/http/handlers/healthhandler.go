package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"modgate/internal/shared/logger"
)

// HealthHandler reports service liveness and store reachability.
type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client // nil when rate limiting is disabled
	logger      logger.Interface
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Health handles GET /health. A failing entitlement store makes the whole
// service unhealthy; Redis is optional and only reported.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Errorw("health check: store unreachable", "error", err)
		checks["store"] = "unreachable"
		healthy = false
	} else {
		checks["store"] = "ok"
	}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			h.logger.Warnw("health check: redis unreachable", "error", err)
			checks["redis"] = "unreachable"
		} else {
			checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusInternalServerError
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
	})
}
