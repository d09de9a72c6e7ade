package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	reportsRepo "fieldtrack/database/repository/reports"
	"fieldtrack/models"

	"go.uber.org/zap"
)

// Fetcher loads every report filed against an outlet.
type Fetcher struct {
	Store       reportsRepo.Store
	Collections map[models.ReportKind]string
	Logger      *zap.Logger
}

func NewFetcher(store reportsRepo.Store, collections map[models.ReportKind]string, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{Store: store, Collections: collections, Logger: logger}
}

// FetchAll queries the four report collections concurrently and returns once all
// of them have completed. A collection that cannot be read yields an empty list;
// FetchAll itself never fails.
func (f *Fetcher) FetchAll(ctx context.Context, outletID string) models.ReportSet {
	results := make([][]models.Document, len(models.ReportKinds))

	var wg sync.WaitGroup
	for i, kind := range models.ReportKinds {
		wg.Add(1)
		go func(i int, kind models.ReportKind) {
			defer wg.Done()
			results[i] = f.fetchCollection(ctx, kind, outletID)
		}(i, kind)
	}
	wg.Wait()

	set := make(models.ReportSet, len(models.ReportKinds))
	for i, kind := range models.ReportKinds {
		set[kind] = results[i]
	}
	return set
}

// fetchCollection runs the ordered query, falls back to an unordered one when it
// fails, and fails closed to an empty list.
func (f *Fetcher) fetchCollection(ctx context.Context, kind models.ReportKind, outletID string) []models.Document {
	collection := f.Collections[kind]
	logger := f.Logger.With(
		zap.String("kind", string(kind)),
		zap.String("collection", collection),
		zap.String("outletId", outletID),
	)

	if collection == "" {
		logger.Warn("no collection configured for report kind")
		return []models.Document{}
	}

	filter := reportsRepo.Filter{Field: models.FieldOutletID, Equals: outletID}
	ordered := &reportsRepo.OrderBy{Field: models.FieldCreatedAt, Direction: reportsRepo.Asc}

	docs, err := f.query(ctx, collection, filter, ordered)
	if err == nil {
		return docs
	}
	if errors.Is(err, reportsRepo.ErrIndexRequired) {
		logger.Info("ordered report query needs an index, retrying unordered", zap.Error(err))
	} else {
		logger.Warn("ordered report query failed, retrying unordered", zap.Error(err))
	}

	docs, err = f.query(ctx, collection, filter, nil)
	if err != nil {
		logger.Warn("unordered report query failed, using empty result", zap.Error(err))
		return []models.Document{}
	}
	return docs
}

// query converts a panicking store into an error so one broken collection cannot
// take down the whole fetch.
func (f *Fetcher) query(ctx context.Context, collection string, filter reportsRepo.Filter, orderBy *reportsRepo.OrderBy) (docs []models.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			docs, err = nil, fmt.Errorf("query %s: panic: %v", collection, r)
		}
	}()

	docs, err = f.Store.QueryCollection(ctx, collection, filter, orderBy)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}
