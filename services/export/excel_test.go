package export

import (
	"bytes"
	"testing"
	"time"

	"fieldtrack/models"
	"fieldtrack/services/analytics"
	"fieldtrack/services/history"

	"github.com/xuri/excelize/v2"
)

func sampleHistory() *history.OutletHistory {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ts := func(monthsAgo int) time.Time { return now.AddDate(0, -monthsAgo, 0) }
	doc := func(created time.Time, fields map[string]interface{}) models.Document {
		raw := map[string]interface{}{models.FieldOutletID: "O1", models.FieldCreatedAt: created}
		for k, v := range fields {
			raw[k] = v
		}
		return models.Document{ID: "d", Fields: models.NewFields(raw)}
	}

	set := models.ReportSet{
		models.QuickSales: {
			doc(ts(0), map[string]interface{}{"salesKegs330": 5}),
			doc(ts(0), map[string]interface{}{"salesKegs330": 7}),
			doc(ts(2), map[string]interface{}{"salesKegs330": 3}),
		},
		models.Attendance: {
			doc(ts(1), map[string]interface{}{"hoursWorked": 6.5}),
		},
	}
	kegs, _ := analytics.LookupMetric("quickSales.salesKegs330")
	hours, _ := analytics.LookupMetric("attendance.hoursWorked")
	return history.Build("O1", set, []analytics.Metric{kegs, hours}, 6, now)
}

func TestHistoryWorkbook(t *testing.T) {
	data, filename, err := HistoryWorkbook(sampleHistory())
	if err != nil {
		t.Fatalf("HistoryWorkbook: %v", err)
	}
	if filename != "outlet-O1-history-6m.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "Monthly" {
		t.Fatalf("sheets = %v, want [Summary Monthly]", sheets)
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatal(err)
	}
	if len(summary) != 3 {
		t.Fatalf("summary has %d rows, want 3", len(summary))
	}
	if got := summary[1]; got[0] != "Kegs sold (330)" || got[2] != "15" || got[3] != "5.00" || got[4] != "3" {
		t.Errorf("summary row = %v", got)
	}

	monthly, err := f.GetRows("Monthly")
	if err != nil {
		t.Fatal(err)
	}
	// Header plus 2024-04, 2024-05 and 2024-06.
	if len(monthly) != 4 {
		t.Fatalf("monthly has %d rows, want 4: %v", len(monthly), monthly)
	}
	if monthly[0][0] != "Month" || monthly[1][0] != "2024-04" || monthly[3][0] != "2024-06" {
		t.Errorf("monthly layout = %v", monthly)
	}
	if monthly[3][1] != "12" {
		t.Errorf("2024-06 kegs = %q, want 12", monthly[3][1])
	}
	if v, _ := f.GetCellValue("Monthly", "C3"); v != "6.5" {
		t.Errorf("2024-05 hours = %q, want 6.5", v)
	}
	if v, _ := f.GetCellValue("Monthly", "B3"); v != "" {
		t.Errorf("2024-05 kegs = %q, want empty", v)
	}
}
