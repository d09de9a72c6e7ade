package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fieldtrack/models"
	"fieldtrack/services/analytics"
	"fieldtrack/services/history"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// fakeHistoryService builds histories from a fixed report set and records requests.
type fakeHistoryService struct {
	set  models.ReportSet
	err  error
	last history.Request
}

func (f *fakeHistoryService) OutletHistory(_ context.Context, req history.Request) (*history.OutletHistory, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	metrics, err := history.ResolveMetrics(req.MetricIDs)
	if err != nil {
		return nil, err
	}
	return history.Build(req.OutletID, f.set, metrics, req.MonthsBack, testNow), nil
}

func newFakeService() *fakeHistoryService {
	doc := func(created time.Time, kegs interface{}) models.Document {
		return models.Document{ID: "d", Fields: models.NewFields(map[string]interface{}{
			models.FieldOutletID:  "O1",
			models.FieldCreatedAt: created,
			"salesKegs330":        kegs,
		})}
	}
	return &fakeHistoryService{set: models.ReportSet{
		models.QuickSales: {
			doc(testNow.Add(-time.Hour), 5),
			doc(testNow.Add(-2*time.Hour), "7"),
			doc(testNow.AddDate(0, -8, 0), 100),
		},
	}}
}

func newHistoryRouter(svc history.HistoryService) *gin.Engine {
	h := NewHistoryHandler(svc, 6, 12)
	r := gin.New()
	r.GET("/api/metrics", ListMetricsHandler)
	r.GET("/api/outlets/:outletId/history", h.GetHistoryHandler)
	r.GET("/api/outlets/:outletId/history/chart", h.GetChartHandler)
	r.GET("/api/outlets/:outletId/history/export", h.ExportHistoryHandler)
	return r
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetHistoryHandler(t *testing.T) {
	svc := newFakeService()
	r := newHistoryRouter(svc)

	w := serve(r, "/api/outlets/O1/history?metrics=quickSales.salesKegs330")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.last.MonthsBack != 6 {
		t.Errorf("MonthsBack = %d, want default 6", svc.last.MonthsBack)
	}

	var body history.OutletHistory
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.OutletID != "O1" || len(body.Metrics) != 1 {
		t.Fatalf("body = %+v", body)
	}
	m := body.Metrics[0]
	if len(m.Series) != 1 || m.Series[0].Value != 12 {
		t.Errorf("series = %+v, want a single bucket of 12", m.Series)
	}
	if m.Summary.Count != 2 || m.Summary.AvgDisplay != "6.00" {
		t.Errorf("summary = %+v", m.Summary)
	}
}

func TestGetHistoryHandlerMonths(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantMonths int
	}{
		{"months=3", http.StatusOK, 3},
		{"months=0", http.StatusOK, 0},
		{"months=48", http.StatusOK, 12},
		{"months=-1", http.StatusBadRequest, 0},
		{"months=six", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := newFakeService()
			w := serve(newHistoryRouter(svc), "/api/outlets/O1/history?"+tt.query)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && svc.last.MonthsBack != tt.wantMonths {
				t.Errorf("MonthsBack = %d, want %d", svc.last.MonthsBack, tt.wantMonths)
			}
		})
	}
}

func TestGetHistoryHandlerErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		err  error
		want int
	}{
		{"unknown metric", "/api/outlets/O1/history?metrics=bogus", nil, http.StatusBadRequest},
		{"service failure", "/api/outlets/O1/history", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			svc.err = tt.err
			w := serve(newHistoryRouter(svc), tt.path)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestGetHistoryHandlerStaleWritesNothing(t *testing.T) {
	svc := newFakeService()
	svc.err = fmt.Errorf("%w: context canceled", history.ErrStale)
	w := serve(newHistoryRouter(svc), "/api/outlets/O1/history")
	if w.Body.Len() != 0 {
		t.Errorf("stale request wrote a body: %s", w.Body.String())
	}
}

func TestGetChartHandler(t *testing.T) {
	r := newHistoryRouter(newFakeService())

	w := serve(r, "/api/outlets/O1/history/chart?metric=quickSales.salesKegs330&months=6")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "2024-06 │") || !strings.Contains(body, "Total 12") {
		t.Errorf("unexpected chart:\n%s", body)
	}

	if w := serve(r, "/api/outlets/O1/history/chart"); w.Code != http.StatusBadRequest {
		t.Errorf("missing metric status = %d, want 400", w.Code)
	}
}

func TestExportHistoryHandler(t *testing.T) {
	w := serve(newHistoryRouter(newFakeService()), "/api/outlets/O1/history/export?months=6&metrics=quickSales.salesKegs330")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "outlet-O1-history-6m.xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	// xlsx files are zip archives.
	if !strings.HasPrefix(w.Body.String(), "PK") {
		t.Error("body is not an xlsx archive")
	}
}

func TestListMetricsHandler(t *testing.T) {
	r := newHistoryRouter(newFakeService())

	var body struct {
		Metrics []analytics.Metric `json:"metrics"`
	}
	w := serve(r, "/api/metrics")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Metrics) != len(analytics.Catalog) {
		t.Errorf("got %d metrics, want %d", len(body.Metrics), len(analytics.Catalog))
	}

	w = serve(r, "/api/metrics?kind=attendance")
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	for _, m := range body.Metrics {
		if m.Kind != models.Attendance {
			t.Errorf("metric %s is not an attendance metric", m.ID)
		}
	}
}
