package history

import (
	"time"

	"fieldtrack/models"
	"fieldtrack/services/analytics"
	"fieldtrack/services/chart"
)

// Request selects the outlet, trailing window and metrics to aggregate.
// An empty MetricIDs selects the whole catalog.
type Request struct {
	OutletID   string
	MonthsBack int
	MetricIDs  []string
}

// SummaryView carries a summary with its display strings.
type SummaryView struct {
	analytics.Summary
	TotalDisplay string `json:"totalDisplay"`
	AvgDisplay   string `json:"avgDisplay"`
}

// MetricHistory is the monthly series and summary of one metric.
type MetricHistory struct {
	analytics.Metric
	Series  []chart.Bar `json:"series"`
	Summary SummaryView `json:"summary"`
}

// KindCounts is the headline document count of one report kind.
type KindCounts struct {
	Kind   models.ReportKind `json:"kind"`
	Total  int               `json:"total"`
	Months []chart.Bar       `json:"months"`
}

// OutletHistory is the assembled analytics view of one outlet.
type OutletHistory struct {
	OutletID    string          `json:"outletId"`
	Outlet      *models.Outlet  `json:"outlet,omitempty"`
	MonthsBack  int             `json:"monthsBack"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Counts      []KindCounts    `json:"counts"`
	Metrics     []MetricHistory `json:"metrics"`
}

// Metric returns the history of the metric with the given ID.
func (h *OutletHistory) Metric(id string) (MetricHistory, bool) {
	for _, m := range h.Metrics {
		if m.ID == id {
			return m, true
		}
	}
	return MetricHistory{}, false
}
