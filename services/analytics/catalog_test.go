package analytics

import (
	"testing"

	"fieldtrack/models"
)

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Catalog {
		if seen[m.ID] {
			t.Errorf("duplicate metric id %s", m.ID)
		}
		seen[m.ID] = true
		if len(m.Keys) == 0 {
			t.Errorf("metric %s has no keys", m.ID)
		}
	}
}

func TestLookupMetric(t *testing.T) {
	m, ok := LookupMetric("sales.promoSmoothRepeatOrders")
	if !ok {
		t.Fatal("metric not found")
	}
	if m.Kind != models.DetailedSales {
		t.Errorf("Kind = %s, want %s", m.Kind, models.DetailedSales)
	}

	// Old documents use the singular field name; both must be summed.
	oldDoc := doc("old", monthsAgo(3), map[string]interface{}{"promoSmoothRepeatOrder": 2})
	newDoc := doc("new", monthsAgo(0), map[string]interface{}{"promoSmoothRepeatOrders": 5})
	s := Summarize([]models.Document{oldDoc, newDoc}, m.Selector(), 6, testNow)
	if s.Total != 7 || s.Count != 2 {
		t.Errorf("Summarize = %+v, want total 7 over 2 documents", s)
	}

	if _, ok := LookupMetric("sales.nope"); ok {
		t.Error("unknown metric should not resolve")
	}
}

func TestMetricsFor(t *testing.T) {
	total := 0
	for _, kind := range models.ReportKinds {
		metrics := MetricsFor(kind)
		if len(metrics) == 0 {
			t.Errorf("no metrics for %s", kind)
		}
		for _, m := range metrics {
			if m.Kind != kind {
				t.Errorf("MetricsFor(%s) returned %s", kind, m.ID)
			}
		}
		total += len(metrics)
	}
	if total != len(Catalog) {
		t.Errorf("metrics across kinds = %d, catalog has %d", total, len(Catalog))
	}
}
