package analytics

import (
	"time"

	"fieldtrack/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func doc(id string, created interface{}, fields map[string]interface{}) models.Document {
	raw := map[string]interface{}{models.FieldOutletID: "O1"}
	if created != nil {
		raw[models.FieldCreatedAt] = created
	}
	for k, v := range fields {
		raw[k] = v
	}
	return models.Document{ID: id, Fields: models.NewFields(raw)}
}

func monthsAgo(n int) time.Time {
	return testNow.AddDate(0, -n, 0)
}
