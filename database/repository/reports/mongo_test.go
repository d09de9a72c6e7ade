package reportsRepo

import (
	"testing"
	"time"

	"fieldtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToDocument(t *testing.T) {
	created := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	oid := primitive.NewObjectID()
	dec, err := primitive.ParseDecimal128("12.5")
	if err != nil {
		t.Fatal(err)
	}

	d := toDocument(bson.M{
		"_id":          oid,
		"outletId":     "O1",
		"createdAt":    primitive.NewDateTimeFromTime(created),
		"salesKegs330": int32(4),
		"salesBottles": dec,
		"meta":         bson.M{"a": 1},
	})

	if d.ID != oid.Hex() {
		t.Errorf("ID = %q, want %q", d.ID, oid.Hex())
	}
	if d.Get("_id").IsDefined() {
		t.Error("_id should not be kept as a field")
	}
	if got, ok := d.CreatedAt(); !ok || !got.Equal(created) {
		t.Errorf("CreatedAt = %v, %v", got, ok)
	}
	if got := models.Coerce(d.Get("salesKegs330")); got != 4 {
		t.Errorf("salesKegs330 = %v, want 4", got)
	}
	if got := models.Coerce(d.Get("salesBottles")); got != 12.5 {
		t.Errorf("salesBottles = %v, want 12.5", got)
	}
	if got := models.Coerce(d.Get("meta")); got != 0 {
		t.Errorf("meta = %v, want 0", got)
	}
}

func TestToDocumentStringID(t *testing.T) {
	if d := toDocument(bson.M{"_id": "r-1"}); d.ID != "r-1" {
		t.Errorf("ID = %q, want r-1", d.ID)
	}
}
