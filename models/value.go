// File: models/value.go
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValueKind tags the dynamic type held by a Value.
type ValueKind int

const (
	KindUndefined ValueKind = iota
	KindNumber
	KindString
	KindBoolean
	KindTimestamp
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	default:
		return "undefined"
	}
}

// Value is one entry of a report document's field bag.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
	ts   time.Time
}

func Undefined() Value            { return Value{} }
func Number(n float64) Value      { return Value{kind: KindNumber, num: n} }
func String(s string) Value       { return Value{kind: KindString, str: s} }
func Boolean(b bool) Value        { return Value{kind: KindBoolean, b: b} }
func Timestamp(t time.Time) Value { return Value{kind: KindTimestamp, ts: t} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsDefined() bool { return v.kind != KindUndefined }

// timeValuer matches timestamp types exposing a native time accessor
// (protobuf timestamps, driver-specific date types).
type timeValuer interface {
	AsTime() time.Time
}

// FromAny converts a raw value decoded by a document store driver into a Value.
// Objects and unsupported types become Undefined.
func FromAny(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Undefined()
	case Value:
		return v
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return Number(f)
		}
		return String(v.String())
	case string:
		return String(v)
	case bool:
		return Boolean(v)
	case time.Time:
		return Timestamp(v)
	case *time.Time:
		if v == nil {
			return Undefined()
		}
		return Timestamp(*v)
	case timeValuer:
		return Timestamp(v.AsTime())
	case map[string]interface{}:
		if ts, ok := timestampFromMap(v); ok {
			return Timestamp(ts)
		}
		return Undefined()
	default:
		return Undefined()
	}
}

// timestampFromMap recognises serialized Firestore timestamps such as
// {"seconds": 1700000000, "nanoseconds": 0} or {"_seconds": ..., "_nanoseconds": ...}.
func timestampFromMap(m map[string]interface{}) (time.Time, bool) {
	secKey, nanoKey := "seconds", "nanoseconds"
	if _, ok := m[secKey]; !ok {
		secKey, nanoKey = "_seconds", "_nanoseconds"
	}
	rawSec, ok := m[secKey]
	if !ok {
		return time.Time{}, false
	}
	sec := FromAny(rawSec)
	if sec.kind != KindNumber || !isFinite(sec.num) {
		return time.Time{}, false
	}
	var nanos float64
	if n := FromAny(m[nanoKey]); n.kind == KindNumber && isFinite(n.num) {
		nanos = n.num
	}
	return time.Unix(int64(sec.num), int64(nanos)), true
}

// Coerce is the single numeric entry point for aggregation. Numbers pass through,
// strings are parsed as base-10 floats, everything else is 0. The result is always finite.
func Coerce(v Value) float64 {
	switch v.kind {
	case KindNumber:
		if !isFinite(v.num) {
			return 0
		}
		return v.num
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" || strings.ContainsAny(s, "xX_") {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !isFinite(f) {
			return 0
		}
		return f
	default:
		return 0
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time resolves the value into a date. Timestamps are used directly, numbers are
// epoch milliseconds and strings are parsed as ISO-8601 dates.
func (v Value) Time() (time.Time, bool) {
	switch v.kind {
	case KindTimestamp:
		if v.ts.IsZero() {
			return time.Time{}, false
		}
		return v.ts, true
	case KindNumber:
		if !isFinite(v.num) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v.num)), true
	case KindString:
		s := strings.TrimSpace(v.str)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// Interface returns the value as a plain Go value, nil when undefined.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBoolean:
		return v.b
	case KindTimestamp:
		return v.ts
	default:
		return nil
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
