package handlers

import (
	"net/http"

	"fieldtrack/models"
	"fieldtrack/services/analytics"

	"github.com/gin-gonic/gin"
)

// ListMetricsHandler returns the metric catalog, optionally filtered by ?kind=.
func ListMetricsHandler(c *gin.Context) {
	kind := c.Query("kind")
	if kind == "" {
		c.JSON(http.StatusOK, gin.H{"metrics": analytics.Catalog})
		return
	}
	metrics := analytics.MetricsFor(models.ReportKind(kind))
	if metrics == nil {
		metrics = []analytics.Metric{}
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}
