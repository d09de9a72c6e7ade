package analytics

import (
	"time"

	"fieldtrack/models"
)

// Summary aggregates a metric over the trailing window. Avg is taken over
// documents, not months.
type Summary struct {
	Total float64 `json:"total"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// Summarize totals the selected metric over every document with an in-window
// timestamp. A document counts even when its value coerces to 0.
func Summarize(docs []models.Document, sel Selector, monthsBack int, now time.Time) Summary {
	var s Summary
	if monthsBack <= 0 {
		return s
	}
	since := Since(now, monthsBack)
	for _, doc := range docs {
		if _, ok := inWindow(doc, since); !ok {
			continue
		}
		s.Total += sel.Resolve(doc)
		s.Count++
	}
	if s.Count > 0 {
		s.Avg = s.Total / float64(s.Count)
	}
	return s
}
