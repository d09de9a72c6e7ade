package export

import (
	"fmt"
	"sort"

	"fieldtrack/services/history"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	monthlySheet = "Monthly"
)

// HistoryWorkbook writes an outlet history as an xlsx workbook: one summary row
// per metric and a month-by-metric grid. It returns the file bytes and name.
func HistoryWorkbook(h *history.OutletHistory) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it rather than leaving it empty.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", err
	}
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}

	if err := writeSummary(f, h, headerStyle); err != nil {
		return nil, "", err
	}
	if err := writeMonthly(f, h, headerStyle); err != nil {
		return nil, "", err
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("outlet-%s-history-%dm.xlsx", h.OutletID, h.MonthsBack)
	return buffer.Bytes(), filename, nil
}

func writeSummary(f *excelize.File, h *history.OutletHistory, headerStyle int) error {
	header := []interface{}{"Metric", "Report", "Total", "Average", "Reports counted"}
	if err := writeRow(f, summarySheet, 1, header); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, m := range h.Metrics {
		row := []interface{}{m.Label, string(m.Kind), m.Summary.TotalDisplay, m.Summary.AvgDisplay, m.Summary.Count}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 32); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "E", 15)
}

// writeMonthly lays months out as rows and metrics as columns. Metrics without a
// document in a month leave that cell empty.
func writeMonthly(f *excelize.File, h *history.OutletHistory, headerStyle int) error {
	monthSet := make(map[string]bool)
	for _, m := range h.Metrics {
		for _, b := range m.Series {
			monthSet[b.Label] = true
		}
	}
	months := make([]string, 0, len(monthSet))
	for label := range monthSet {
		months = append(months, label)
	}
	sort.Strings(months)

	header := []interface{}{"Month"}
	for _, m := range h.Metrics {
		header = append(header, m.Label)
	}
	if err := writeRow(f, monthlySheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(monthlySheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, month := range months {
		row := []interface{}{month}
		for _, m := range h.Metrics {
			var cell interface{}
			for _, b := range m.Series {
				if b.Label == month {
					cell = b.Value
					break
				}
			}
			row = append(row, cell)
		}
		if err := writeRow(f, monthlySheet, r+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
