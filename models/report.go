// File: models/report.go
package models

import "time"

// ReportKind identifies one of the report collections filed against an outlet.
type ReportKind string

const (
	QuickSales      ReportKind = "quickSales"
	DetailedSales   ReportKind = "sales"
	EarlyAssessment ReportKind = "earlyAssessment"
	Attendance      ReportKind = "attendance"
)

// ReportKinds lists every kind in display order.
var ReportKinds = []ReportKind{QuickSales, DetailedSales, EarlyAssessment, Attendance}

// Field names shared by every report collection.
const (
	FieldOutletID  = "outletId"
	FieldCreatedAt = "createdAt"
)

// Fields is the dynamic field bag of a stored document.
type Fields map[string]Value

// NewFields converts a raw driver map into a field bag.
func NewFields(raw map[string]interface{}) Fields {
	fields := make(Fields, len(raw))
	for k, v := range raw {
		fields[k] = FromAny(v)
	}
	return fields
}

// Document is a read-only snapshot of a stored report: the store-assigned ID
// merged with its fields.
type Document struct {
	ID     string
	Fields Fields
}

// Get returns the named field, Undefined when absent.
func (d Document) Get(key string) Value {
	if d.Fields == nil {
		return Undefined()
	}
	return d.Fields[key]
}

func (d Document) OutletID() string {
	s, _ := d.Get(FieldOutletID).Interface().(string)
	return s
}

// CreatedAt resolves the creation timestamp; ok is false when it is absent or unparseable.
func (d Document) CreatedAt() (time.Time, bool) {
	return d.Get(FieldCreatedAt).Time()
}

// ReportSet holds the documents fetched for one outlet, per report kind.
type ReportSet map[ReportKind][]Document

// Total returns the number of documents across all kinds.
func (s ReportSet) Total() int {
	n := 0
	for _, docs := range s {
		n += len(docs)
	}
	return n
}
