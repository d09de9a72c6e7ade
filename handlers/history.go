// File: fieldtrack/handlers/history.go
package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fieldtrack/services/chart"
	"fieldtrack/services/export"
	"fieldtrack/services/history"
	"fieldtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const chartTrackWidth = 40

// HistoryHandler serves the outlet history screen.
type HistoryHandler struct {
	Service       history.HistoryService
	DefaultMonths int
	MaxMonths     int
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc history.HistoryService, defaultMonths, maxMonths int) *HistoryHandler {
	return &HistoryHandler{
		Service:       svc,
		DefaultMonths: defaultMonths,
		MaxMonths:     maxMonths,
	}
}

// GetHistoryHandler returns the monthly series, summaries and headline counts of an outlet.
func (h *HistoryHandler) GetHistoryHandler(c *gin.Context) {
	req, ok := h.parseRequest(c, splitMetrics(c.Query("metrics")))
	if !ok {
		return
	}
	result, ok := h.load(c, req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetChartHandler renders one metric's monthly bars as plain text.
func (h *HistoryHandler) GetChartHandler(c *gin.Context) {
	metricID := strings.TrimSpace(c.Query("metric"))
	if metricID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing metric", "query parameter 'metric' is required")
		return
	}
	req, ok := h.parseRequest(c, []string{metricID})
	if !ok {
		return
	}
	result, ok := h.load(c, req)
	if !ok {
		return
	}

	m, _ := result.Metric(metricID)
	var buf bytes.Buffer
	buf.WriteString(m.Label + "\n")
	if err := chart.RenderText(&buf, m.Series, chartTrackWidth); err != nil {
		getLogger(c).Error("Failed to render chart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render chart", "")
		return
	}
	buf.WriteString("Total " + m.Summary.TotalDisplay + "  Avg " + m.Summary.AvgDisplay + "\n")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// ExportHistoryHandler streams the history as an xlsx workbook.
func (h *HistoryHandler) ExportHistoryHandler(c *gin.Context) {
	req, ok := h.parseRequest(c, splitMetrics(c.Query("metrics")))
	if !ok {
		return
	}
	result, ok := h.load(c, req)
	if !ok {
		return
	}

	data, filename, err := export.HistoryWorkbook(result)
	if err != nil {
		getLogger(c).Error("Failed to build history workbook", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export history", "")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// parseRequest reads the outlet and window. A missing months parameter uses the
// default; a window past MaxMonths is clamped.
func (h *HistoryHandler) parseRequest(c *gin.Context, metricIDs []string) (history.Request, bool) {
	outletID := strings.TrimSpace(c.Param("outletId"))
	if outletID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing outlet ID", "")
		return history.Request{}, false
	}

	months := h.DefaultMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid months", "months must be a non-negative integer")
			return history.Request{}, false
		}
		months = n
	}
	if h.MaxMonths > 0 && months > h.MaxMonths {
		months = h.MaxMonths
	}

	return history.Request{OutletID: outletID, MonthsBack: months, MetricIDs: metricIDs}, true
}

func (h *HistoryHandler) load(c *gin.Context, req history.Request) (*history.OutletHistory, bool) {
	logger := getLogger(c)
	result, err := h.Service.OutletHistory(c.Request.Context(), req)
	switch {
	case err == nil:
		return result, true
	case errors.Is(err, history.ErrUnknownMetric):
		utils.JSONError(c, http.StatusBadRequest, "Unknown metric", err.Error())
	case errors.Is(err, history.ErrStale):
		// The client is gone; nobody reads a response.
		logger.Debug("History request abandoned", zap.String("outletId", req.OutletID))
		c.Abort()
	default:
		logger.Error("Failed to load outlet history", zap.String("outletId", req.OutletID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load outlet history", "")
	}
	return nil, false
}

func splitMetrics(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
