package analytics

import "fieldtrack/models"

// Metric is one displayable statistic: the report kind it is read from and the
// field keys it sums. A metric stored under more than one field name over the
// product's lifetime lists every name, so old and new documents merge.
type Metric struct {
	ID    string            `json:"id"`
	Kind  models.ReportKind `json:"kind"`
	Label string            `json:"label"`
	Keys  []string          `json:"keys"`
}

// Selector returns the selector reading this metric.
func (m Metric) Selector() Selector {
	return Keys(m.Keys...)
}

// Catalog is the alias table of every metric shown on the outlet history screen.
var Catalog = []Metric{
	{ID: "quickSales.salesKegs330", Kind: models.QuickSales, Label: "Kegs sold (330)", Keys: []string{"salesKegs330"}},
	{ID: "quickSales.salesKegs500", Kind: models.QuickSales, Label: "Kegs sold (500)", Keys: []string{"salesKegs500"}},
	{ID: "quickSales.salesBottles", Kind: models.QuickSales, Label: "Bottles sold", Keys: []string{"salesBottles"}},

	{ID: "sales.visitorsOverall", Kind: models.DetailedSales, Label: "Visitors", Keys: []string{"visitorsOverall"}},
	{ID: "sales.visitorsConsumers", Kind: models.DetailedSales, Label: "Consumers", Keys: []string{"visitorsConsumers"}},
	{ID: "sales.salesKegs330", Kind: models.DetailedSales, Label: "Kegs sold (330)", Keys: []string{"salesKegs330"}},
	{ID: "sales.promoSmoothSold", Kind: models.DetailedSales, Label: "Smooth promo sold", Keys: []string{"promoSmoothSold"}},
	{ID: "sales.promoSmoothRepeatOrders", Kind: models.DetailedSales, Label: "Smooth promo repeat orders", Keys: []string{"promoSmoothRepeatOrders", "promoSmoothRepeatOrder"}},

	{ID: "earlyAssessment.stockKegs", Kind: models.EarlyAssessment, Label: "Kegs in stock", Keys: []string{"stockKegs"}},
	{ID: "earlyAssessment.stockBottles", Kind: models.EarlyAssessment, Label: "Bottles in stock", Keys: []string{"stockBottles"}},
	{ID: "earlyAssessment.visitorsOverall", Kind: models.EarlyAssessment, Label: "Visitors", Keys: []string{"visitorsOverall"}},

	{ID: "attendance.hoursWorked", Kind: models.Attendance, Label: "Hours worked", Keys: []string{"hoursWorked"}},
	{ID: "attendance.ambassadorsPresent", Kind: models.Attendance, Label: "Ambassadors present", Keys: []string{"ambassadorsPresent"}},
}

var catalogIndex = func() map[string]Metric {
	idx := make(map[string]Metric, len(Catalog))
	for _, m := range Catalog {
		idx[m.ID] = m
	}
	return idx
}()

// LookupMetric finds a catalog metric by ID.
func LookupMetric(id string) (Metric, bool) {
	m, ok := catalogIndex[id]
	return m, ok
}

// MetricsFor returns the catalog metrics read from kind.
func MetricsFor(kind models.ReportKind) []Metric {
	var out []Metric
	for _, m := range Catalog {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}
