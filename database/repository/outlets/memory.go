package outletsRepo

import (
	"context"
	"sync"

	"fieldtrack/models"
)

// MemoryOutletRepo keeps outlets in process memory.
type MemoryOutletRepo struct {
	mu      sync.RWMutex
	outlets map[string]models.Outlet
}

func NewMemoryOutletRepo() *MemoryOutletRepo {
	return &MemoryOutletRepo{outlets: make(map[string]models.Outlet)}
}

func (r *MemoryOutletRepo) Save(outlet models.Outlet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outlets[outlet.ID] = outlet
}

func (r *MemoryOutletRepo) GetByID(_ context.Context, id string) (*models.Outlet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	outlet, ok := r.outlets[id]
	if !ok {
		return nil, ErrOutletNotFound
	}
	return &outlet, nil
}
