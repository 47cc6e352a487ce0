package chart

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/dshills/chartwire/internal/callback"
)

// Registry maps chart ids to live charts. It implements callback.Charts.
type Registry struct {
	mu     sync.RWMutex
	charts map[string]*Chart
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{charts: make(map[string]*Chart)}
}

// Register adds a chart. It fails for nil charts and duplicate ids.
func (r *Registry) Register(c *Chart) error {
	if c == nil {
		return configError("register", "", ErrNilChart)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.charts[c.id]; exists {
		return configError("register", c.id, ErrAlreadyRegistered)
	}
	r.charts[c.id] = c
	c.registry = r
	return nil
}

// Lookup implements callback.Charts.
func (r *Registry) Lookup(id string) (callback.Chart, bool) {
	c, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	return c, true
}

// Get returns the chart registered under id.
func (r *Registry) Get(id string) (*Chart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.charts[id]
	return c, ok
}

// Destroy removes the chart registered under id.
func (r *Registry) Destroy(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.charts[id]; !ok {
		return false
	}
	delete(r.charts, id)
	return true
}

// IDs returns every registered id, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := lo.Keys(r.charts)
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered charts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.charts)
}
