package handlers

import (
	"net/http"

	"menucatalog/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler reports whether the menu's backing services answer.
type HealthHandler struct {
	Mongo *mongo.Client
	Redis *redis.Client
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.Mongo, h.Redis)
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
}
