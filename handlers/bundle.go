// File: fieldtrack/handlers/bundle.go
package handlers

import (
	"fieldtrack/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and the auth they are mounted behind.
type HandlerBundle struct {
	Verifier middleware.TokenVerifier

	// Health endpoint
	HealthHandler gin.HandlerFunc

	// Catalog endpoint
	ListMetricsHandler gin.HandlerFunc

	// Outlet history endpoints
	GetHistoryHandler    gin.HandlerFunc
	GetChartHandler      gin.HandlerFunc
	ExportHistoryHandler gin.HandlerFunc
}
