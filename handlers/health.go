package handlers

import (
	"net/http"

	"timeback/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	if status.Redis != nil && !*status.Redis {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "health": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TimeBack", "health": status})
}
