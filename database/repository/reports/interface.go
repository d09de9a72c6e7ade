// File: database/repository/reports/interface.go
package reportsRepo

import (
	"context"
	"errors"

	"fieldtrack/models"
)

// ErrIndexRequired is returned when an ordered query needs an index the store does not have.
var ErrIndexRequired = errors.New("query requires an index")

// Direction is the sort order of an ordered query.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Filter is a single equality filter.
type Filter struct {
	Field  string
	Equals interface{}
}

// OrderBy orders a query by one field.
type OrderBy struct {
	Field     string
	Direction Direction
}

// Store is the read side of a document store holding report collections.
type Store interface {
	// QueryCollection returns every document of collection matching filter,
	// ordered by orderBy when it is not nil.
	QueryCollection(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) ([]models.Document, error)
	Ping(ctx context.Context) error
}

// Writer stores raw documents. It is used by seeding tools only; the
// history engine never writes.
type Writer interface {
	Put(ctx context.Context, collection, id string, fields map[string]interface{}) error
}
