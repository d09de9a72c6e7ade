package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldtrack/handlers"
	"fieldtrack/middleware"
	"fieldtrack/utils"

	"github.com/gin-gonic/gin"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("test-secret")
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		Verifier:             &middleware.JWTVerifier{Secret: secret},
		HealthHandler:        ok,
		ListMetricsHandler:   ok,
		GetHistoryHandler:    ok,
		GetChartHandler:      ok,
		ExportHistoryHandler: ok,
	})

	ambassador, _ := utils.GenerateToken(secret, "u1", "ambassador", time.Hour)
	lead, _ := utils.GenerateToken(secret, "u2", "team_lead", time.Hour)

	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/health", "", http.StatusOK},
		{"/api/metrics", "", http.StatusUnauthorized},
		{"/api/metrics", ambassador, http.StatusOK},
		{"/api/outlets/O1/history", ambassador, http.StatusOK},
		{"/api/outlets/O1/history/chart", ambassador, http.StatusOK},
		{"/api/outlets/O1/history/export", ambassador, http.StatusForbidden},
		{"/api/outlets/O1/history/export", lead, http.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.token != "" {
			req.Header.Set("Authorization", "Bearer "+tt.token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}
