// Package seed generates sample outlets and field reports for local runs.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	reportsRepo "fieldtrack/database/repository/reports"
	"fieldtrack/models"

	"github.com/google/uuid"
)

// Report is one generated report document.
type Report struct {
	Kind   models.ReportKind
	ID     string
	Fields map[string]interface{}
}

// Dataset is a generated set of outlets and their reports.
type Dataset struct {
	Outlets []models.Outlet
	Reports []Report
}

var provinces = []string{"Gauteng", "Western Cape", "KwaZulu-Natal", "Limpopo"}

// Generate builds outlets with reports spread over the last months months.
// Older detailed sales reports use the legacy promoSmoothRepeatOrder key and some
// counts are stored as strings, as they are in older production documents.
func Generate(now time.Time, outlets, months int, rng *rand.Rand) Dataset {
	var ds Dataset
	for i := 1; i <= outlets; i++ {
		outlet := models.Outlet{
			ID:       fmt.Sprintf("outlet-%03d", i),
			Name:     fmt.Sprintf("Outlet %d", i),
			Province: provinces[(i-1)%len(provinces)],
			Project:  "launch",
			Active:   true,
		}
		ds.Outlets = append(ds.Outlets, outlet)

		for m := months - 1; m >= 0; m-- {
			monthStart := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location()).AddDate(0, -m, 0)
			legacy := m >= months/2
			perMonth := 1 + rng.Intn(3)
			for n := 0; n < perMonth; n++ {
				created := monthStart.Add(time.Duration(rng.Intn(25*24)) * time.Hour)
				if created.After(now) {
					created = now
				}
				ds.Reports = append(ds.Reports, generateReports(outlet.ID, created, legacy, rng)...)
			}
		}
	}
	return ds
}

func generateReports(outletID string, created time.Time, legacy bool, rng *rand.Rand) []Report {
	base := func() map[string]interface{} {
		return map[string]interface{}{
			models.FieldOutletID:  outletID,
			models.FieldCreatedAt: created,
		}
	}

	quick := base()
	quick["salesKegs330"] = rng.Intn(12)
	quick["salesKegs500"] = rng.Intn(6)
	quick["salesBottles"] = fmt.Sprintf("%d", rng.Intn(48))

	sales := base()
	sales["visitorsOverall"] = 20 + rng.Intn(80)
	sales["visitorsConsumers"] = 10 + rng.Intn(40)
	sales["salesKegs330"] = rng.Intn(12)
	sales["promoSmoothSold"] = rng.Intn(30)
	if legacy {
		sales["promoSmoothRepeatOrder"] = rng.Intn(8)
	} else {
		sales["promoSmoothRepeatOrders"] = rng.Intn(8)
	}

	early := base()
	early["stockKegs"] = rng.Intn(20)
	early["stockBottles"] = rng.Intn(200)
	early["visitorsOverall"] = rng.Intn(60)

	attendance := base()
	attendance["hoursWorked"] = 4 + rng.Float64()*4
	attendance["ambassadorsPresent"] = 1 + rng.Intn(3)

	return []Report{
		{Kind: models.QuickSales, ID: uuid.New().String(), Fields: quick},
		{Kind: models.DetailedSales, ID: uuid.New().String(), Fields: sales},
		{Kind: models.EarlyAssessment, ID: uuid.New().String(), Fields: early},
		{Kind: models.Attendance, ID: uuid.New().String(), Fields: attendance},
	}
}

// Write stores the dataset through w. Outlets go to outletsCollection and reports
// to the collection of their kind.
func Write(ctx context.Context, w reportsRepo.Writer, collections map[models.ReportKind]string, outletsCollection string, ds Dataset) error {
	for _, o := range ds.Outlets {
		fields := map[string]interface{}{
			"name":     o.Name,
			"province": o.Province,
			"project":  o.Project,
			"active":   o.Active,
		}
		if err := w.Put(ctx, outletsCollection, o.ID, fields); err != nil {
			return fmt.Errorf("write outlet %s: %w", o.ID, err)
		}
	}
	for _, r := range ds.Reports {
		collection, ok := collections[r.Kind]
		if !ok || collection == "" {
			return fmt.Errorf("no collection for report kind %s", r.Kind)
		}
		if err := w.Put(ctx, collection, r.ID, r.Fields); err != nil {
			return fmt.Errorf("write %s report %s: %w", r.Kind, r.ID, err)
		}
	}
	return nil
}
