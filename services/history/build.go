package history

import (
	"time"

	"fieldtrack/models"
	"fieldtrack/services/analytics"
	"fieldtrack/services/chart"
)

// Build aggregates fetched reports into an OutletHistory. It does not touch any store.
func Build(outletID string, set models.ReportSet, metrics []analytics.Metric, monthsBack int, now time.Time) *OutletHistory {
	h := &OutletHistory{
		OutletID:    outletID,
		MonthsBack:  monthsBack,
		GeneratedAt: now,
		Counts:      make([]KindCounts, 0, len(models.ReportKinds)),
		Metrics:     make([]MetricHistory, 0, len(metrics)),
	}

	for _, kind := range models.ReportKinds {
		months := analytics.CountByMonth(set[kind], monthsBack, now)
		total := 0
		for _, b := range months {
			total += int(b.Value)
		}
		h.Counts = append(h.Counts, KindCounts{
			Kind:   kind,
			Total:  total,
			Months: chart.Bars(toPoints(months)),
		})
	}

	for _, m := range metrics {
		docs := set[m.Kind]
		sel := m.Selector()
		summary := analytics.Summarize(docs, sel, monthsBack, now)
		h.Metrics = append(h.Metrics, MetricHistory{
			Metric: m,
			Series: chart.Bars(toPoints(analytics.SumByMonth(docs, sel, monthsBack, now))),
			Summary: SummaryView{
				Summary:      summary,
				TotalDisplay: analytics.FormatTotal(summary.Total),
				AvgDisplay:   analytics.FormatAvg(summary.Avg),
			},
		})
	}
	return h
}

func toPoints(buckets []analytics.Bucket) []chart.Point {
	points := make([]chart.Point, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, chart.Point{Label: b.Label, Value: b.Value})
	}
	return points
}
