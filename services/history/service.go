package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	outletsRepo "fieldtrack/database/repository/outlets"
	"fieldtrack/models"
	"fieldtrack/services/analytics"

	"go.uber.org/zap"
)

var (
	ErrUnknownMetric = errors.New("unknown metric")
	// ErrStale is returned when the caller went away while reports were being fetched.
	// The fetched result is dropped, never cached.
	ErrStale = errors.New("history request abandoned")
)

type HistoryService interface {
	OutletHistory(ctx context.Context, req Request) (*OutletHistory, error)
}

// DefaultHistoryService is the production implementation.
type DefaultHistoryService struct {
	Fetcher  *Fetcher
	Outlets  outletsRepo.OutletRepository
	Cache    Cache
	CacheTTL time.Duration
	Now      func() time.Time
	Logger   *zap.Logger
}

func NewDefaultHistoryService(fetcher *Fetcher, outlets outletsRepo.OutletRepository, cache Cache, cacheTTL time.Duration, logger *zap.Logger) (*DefaultHistoryService, error) {
	if fetcher == nil || fetcher.Store == nil {
		return nil, fmt.Errorf("history service initialization error: fetcher has no store")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultHistoryService{
		Fetcher:  fetcher,
		Outlets:  outlets,
		Cache:    cache,
		CacheTTL: cacheTTL,
		Now:      time.Now,
		Logger:   logger,
	}, nil
}

// ResolveMetrics maps metric IDs onto the catalog. Duplicates are dropped and
// an empty list selects every metric.
func ResolveMetrics(ids []string) ([]analytics.Metric, error) {
	if len(ids) == 0 {
		return append([]analytics.Metric(nil), analytics.Catalog...), nil
	}
	seen := make(map[string]bool, len(ids))
	metrics := make([]analytics.Metric, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		m, ok := analytics.LookupMetric(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, id)
		}
		seen[id] = true
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func (s *DefaultHistoryService) OutletHistory(ctx context.Context, req Request) (*OutletHistory, error) {
	metrics, err := ResolveMetrics(req.MetricIDs)
	if err != nil {
		return nil, err
	}
	now := s.now()
	logger := s.Logger.With(zap.String("outletId", req.OutletID), zap.Int("monthsBack", req.MonthsBack))

	key := cacheKey(req.OutletID, req.MonthsBack, metrics, now)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn("history cache read failed", zap.Error(err))
		} else if cached != nil {
			logger.Debug("history served from cache")
			return cached, nil
		}
	}

	outletCh := make(chan *models.Outlet, 1)
	go func() {
		outletCh <- s.lookupOutlet(ctx, req.OutletID, logger)
	}()
	set := s.Fetcher.FetchAll(ctx, req.OutletID)
	outlet := <-outletCh

	if err := ctx.Err(); err != nil {
		logger.Debug("discarding stale history response", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStale, err)
	}

	h := Build(req.OutletID, set, metrics, req.MonthsBack, now)
	h.Outlet = outlet
	logger.Debug("history assembled", zap.Int("documents", set.Total()))

	if s.Cache != nil && s.CacheTTL > 0 {
		if err := s.Cache.Set(ctx, key, h, s.CacheTTL); err != nil {
			logger.Warn("history cache write failed", zap.Error(err))
		}
	}
	return h, nil
}

// lookupOutlet is best effort: a missing or unreadable outlet leaves the header empty.
func (s *DefaultHistoryService) lookupOutlet(ctx context.Context, id string, logger *zap.Logger) *models.Outlet {
	if s.Outlets == nil {
		return nil
	}
	outlet, err := s.Outlets.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, outletsRepo.ErrOutletNotFound) {
			logger.Warn("outlet lookup failed", zap.Error(err))
		}
		return nil
	}
	return outlet
}

func (s *DefaultHistoryService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// cacheKey scopes a cached history to the day it was computed on, since the
// trailing window moves with the date.
func cacheKey(outletID string, monthsBack int, metrics []analytics.Metric, now time.Time) string {
	ids := make([]string, 0, len(metrics))
	for _, m := range metrics {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return fmt.Sprintf("%s:%d:%s:%s", outletID, monthsBack, now.Format("2006-01-02"), strings.Join(ids, ","))
}
