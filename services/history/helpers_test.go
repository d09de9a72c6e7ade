package history

import (
	"context"
	"sync"
	"time"

	reportsRepo "fieldtrack/database/repository/reports"
	"fieldtrack/models"
)

var (
	testNow         = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	testCollections = map[models.ReportKind]string{
		models.QuickSales:      "quickSalesReports",
		models.DetailedSales:   "salesReports",
		models.EarlyAssessment: "earlyAssessmentReports",
		models.Attendance:      "attendanceReports",
	}
)

func addReport(s *reportsRepo.MemoryStore, kind models.ReportKind, outletID string, created time.Time, fields map[string]interface{}) {
	raw := map[string]interface{}{
		models.FieldOutletID:  outletID,
		models.FieldCreatedAt: created,
	}
	for k, v := range fields {
		raw[k] = v
	}
	s.Add(testCollections[kind], "", raw)
}

// seedEveryKind adds one current-month report per kind for outletID.
func seedEveryKind(s *reportsRepo.MemoryStore, outletID string) {
	for _, kind := range models.ReportKinds {
		addReport(s, kind, outletID, testNow, map[string]interface{}{"salesKegs330": 1})
	}
}

// panicStore panics on queries against one collection.
type panicStore struct {
	*reportsRepo.MemoryStore
	collection string
}

func (s panicStore) QueryCollection(ctx context.Context, collection string, filter reportsRepo.Filter, orderBy *reportsRepo.OrderBy) ([]models.Document, error) {
	if collection == s.collection {
		panic("driver exploded")
	}
	return s.MemoryStore.QueryCollection(ctx, collection, filter, orderBy)
}

// recordingStore records which queries were ordered.
type recordingStore struct {
	*reportsRepo.MemoryStore
	mu    sync.Mutex
	calls map[string][]bool
}

func newRecordingStore(s *reportsRepo.MemoryStore) *recordingStore {
	return &recordingStore{MemoryStore: s, calls: make(map[string][]bool)}
}

func (s *recordingStore) QueryCollection(ctx context.Context, collection string, filter reportsRepo.Filter, orderBy *reportsRepo.OrderBy) ([]models.Document, error) {
	s.mu.Lock()
	s.calls[collection] = append(s.calls[collection], orderBy != nil)
	s.mu.Unlock()
	return s.MemoryStore.QueryCollection(ctx, collection, filter, orderBy)
}

// memCache is an in-process Cache.
type memCache struct {
	mu     sync.Mutex
	items  map[string]*OutletHistory
	gets   int
	sets   int
	getErr error
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string]*OutletHistory)}
}

func (c *memCache) Get(_ context.Context, key string) (*OutletHistory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.items[key], nil
}

func (c *memCache) Set(_ context.Context, key string, h *OutletHistory, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.items[key] = h
	return nil
}
