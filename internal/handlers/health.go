package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bconolly/MiniatureProjectTracker/internal/util"
)

const serviceName = "miniature-painting-tracker"

// Health reports service liveness and database connectivity.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.HealthCheck(); err != nil {
		util.Logger(c).Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"service":  serviceName,
			"database": "disconnected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"database": "connected",
	})
}
