package handlers

import (
	"net/http"

	"fieldtrack/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last health snapshot taken by the monitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "services": status})
}
