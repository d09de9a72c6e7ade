package reportsRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fieldtrack/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used for local runs and tests.
// Ordered queries behave like Firestore: documents missing the order field are left out.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]models.Document
	// collections whose ordered queries fail with ErrIndexRequired
	unindexed map[string]bool
	// collections whose queries always fail
	failures map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]models.Document),
		unindexed:   make(map[string]bool),
		failures:    make(map[string]error),
	}
}

// Add appends a document built from raw fields and returns its ID.
// A fresh UUID is assigned when id is empty.
func (s *MemoryStore) Add(collection, id string, fields map[string]interface{}) string {
	if id == "" {
		id = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], models.Document{
		ID:     id,
		Fields: models.NewFields(fields),
	})
	return id
}

func (s *MemoryStore) Put(_ context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID == id {
			docs[i] = models.Document{ID: id, Fields: models.NewFields(fields)}
			s.mu.Unlock()
			return nil
		}
	}
	s.mu.Unlock()
	s.Add(collection, id, fields)
	return nil
}

// RequireIndex makes ordered queries on collection fail with ErrIndexRequired.
func (s *MemoryStore) RequireIndex(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unindexed[collection] = true
}

// FailWith makes every query on collection return err.
func (s *MemoryStore) FailWith(collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[collection] = err
}

// Clear drops every document and injected failure.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string][]models.Document)
	s.unindexed = make(map[string]bool)
	s.failures = make(map[string]error)
}

func (s *MemoryStore) QueryCollection(ctx context.Context, collection string, filter Filter, orderBy *OrderBy) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failures[collection]; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	if orderBy != nil && s.unindexed[collection] {
		return nil, fmt.Errorf("%w: %s ordered by %s", ErrIndexRequired, collection, orderBy.Field)
	}

	want := models.FromAny(filter.Equals)
	docs := []models.Document{}
	for _, d := range s.collections[collection] {
		if !sameValue(d.Get(filter.Field), want) {
			continue
		}
		if orderBy != nil && !d.Get(orderBy.Field).IsDefined() {
			continue
		}
		docs = append(docs, d)
	}

	if orderBy != nil {
		field, desc := orderBy.Field, orderBy.Direction == Desc
		sort.SliceStable(docs, func(i, j int) bool {
			a, b := sortKey(docs[i].Get(field)), sortKey(docs[j].Get(field))
			if desc {
				return a > b
			}
			return a < b
		})
	}
	return docs, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func sameValue(a, b models.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if ta, ok := a.Time(); ok && a.Kind() == models.KindTimestamp {
		tb, _ := b.Time()
		return ta.Equal(tb)
	}
	return a.Interface() == b.Interface()
}

func sortKey(v models.Value) float64 {
	if v.Kind() == models.KindTimestamp {
		t, _ := v.Time()
		return float64(t.UnixNano())
	}
	return models.Coerce(v)
}
