package analytics

import "fieldtrack/models"

// Selector names the document field(s) a statistic is read from. When several
// keys are given their coerced values are summed per document.
type Selector struct {
	Keys []string `json:"keys"`
}

// Key selects a single field.
func Key(key string) Selector {
	return Selector{Keys: []string{key}}
}

// Keys selects the sum of several fields.
func Keys(keys ...string) Selector {
	return Selector{Keys: keys}
}

// Resolve returns the metric value of one document.
func (s Selector) Resolve(doc models.Document) float64 {
	var v float64
	for _, key := range s.Keys {
		v += models.Coerce(doc.Get(key))
	}
	return v
}
