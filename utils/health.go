package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger checks that a backing service is reachable.
type Pinger func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	DocumentStore bool      `json:"documentStore"`
	Cache         *bool     `json:"cache,omitempty"`
	CheckedAt     time.Time `json:"checkedAt"`
}

// Healthy reports whether every configured dependency answered.
func (h HealthStatus) Healthy() bool {
	return h.DocumentStore && (h.Cache == nil || *h.Cache)
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings the dependencies once and stores the snapshot. cache may be nil.
func CheckHealth(ctx context.Context, store, cache Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		DocumentStore: store(ctx) == nil,
		CheckedAt:     time.Now(),
	}
	if cache != nil {
		ok := cache(ctx) == nil
		status.Cache = &ok
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, store, cache Pinger) {
	CheckHealth(ctx, store, cache)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, store, cache)
			}
		}
	}()
}
