package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/caribtel/storefront-api/internal/cache"
	"github.com/caribtel/storefront-api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	db            *sqlx.DB
	redis         *cache.RedisClient
	financingDemo bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, redis *cache.RedisClient, financingDemo bool) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, financingDemo: financingDemo}
}

// GetHealth responds with service and dependency status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	dbStatus := "connected"
	if h.db == nil || h.db.PingContext(c.Request.Context()) != nil {
		dbStatus = "disconnected"
	}

	redisStatus := "connected"
	if h.redis == nil || h.redis.Ping(c.Request.Context()) != nil {
		redisStatus = "disconnected"
	}

	financing := "connected"
	if h.financingDemo {
		financing = "demo"
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":    "healthy",
		"version":   "1.0.0",
		"uptime":    int(time.Since(startTime).Seconds()),
		"database":  gin.H{"status": dbStatus},
		"redis":     gin.H{"status": redisStatus},
		"financing": gin.H{"status": financing},
	})
}
