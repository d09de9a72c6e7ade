package analytics

import (
	"fmt"
	"sort"
	"time"

	"fieldtrack/models"
)

// Bucket is one month of a series.
type Bucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Since returns the start of the trailing window: monthsBack calendar months before now.
func Since(now time.Time, monthsBack int) time.Time {
	return now.AddDate(0, -monthsBack, 0)
}

// MonthLabel formats t as YYYY-MM in loc.
func MonthLabel(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// inWindow resolves the creation date of doc and reports whether it falls on or after since.
func inWindow(doc models.Document, since time.Time) (time.Time, bool) {
	created, ok := doc.CreatedAt()
	if !ok || created.Before(since) {
		return time.Time{}, false
	}
	return created, true
}

// CountByMonth counts documents per month over the trailing window.
func CountByMonth(docs []models.Document, monthsBack int, now time.Time) []Bucket {
	return bucketize(docs, monthsBack, now, func(models.Document) float64 { return 1 })
}

// SumByMonth sums the selected metric per month over the trailing window.
func SumByMonth(docs []models.Document, sel Selector, monthsBack int, now time.Time) []Bucket {
	return bucketize(docs, monthsBack, now, sel.Resolve)
}

// bucketize groups in-window documents by month. Months without documents are
// omitted, labels ascend, and only the latest monthsBack labels are kept.
func bucketize(docs []models.Document, monthsBack int, now time.Time, value func(models.Document) float64) []Bucket {
	if monthsBack <= 0 {
		return []Bucket{}
	}
	since := Since(now, monthsBack)

	sums := make(map[string]float64)
	for _, doc := range docs {
		created, ok := inWindow(doc, since)
		if !ok {
			continue
		}
		sums[MonthLabel(created, now.Location())] += value(doc)
	}

	labels := make([]string, 0, len(sums))
	for label := range sums {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	if len(labels) > monthsBack {
		labels = labels[len(labels)-monthsBack:]
	}

	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, Bucket{Label: label, Value: sums[label]})
	}
	return buckets
}
