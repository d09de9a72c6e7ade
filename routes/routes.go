package routes

import (
	"time"

	"fieldtrack/handlers"
	"fieldtrack/middleware"
	"fieldtrack/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterMetricRoutes registers the metric catalog endpoint.
func RegisterMetricRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/metrics")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.GET("", hb.ListMetricsHandler)
	}
}

// RegisterOutletRoutes registers the outlet history endpoints.
func RegisterOutletRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/outlets/:outletId")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.GET("/history", hb.GetHistoryHandler)
		api.GET("/history/chart", hb.GetChartHandler)

		// Exports leave the app, so they need a supervisor role.
		api.GET("/history/export", middleware.RequireRole(models.RoleTeamLead), hb.ExportHistoryHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterMetricRoutes(r, hb)
	RegisterOutletRoutes(r, hb)
}
