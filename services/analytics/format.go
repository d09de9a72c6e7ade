package analytics

import "github.com/shopspring/decimal"

// FormatTotal renders a total rounded to the nearest integer.
func FormatTotal(v float64) string {
	return decimal.NewFromFloat(v).Round(0).String()
}

// FormatAvg renders an average with two decimal places.
func FormatAvg(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
