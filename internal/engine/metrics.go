package engine

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects option resolution statistics.
type Metrics struct {
	mu sync.RWMutex

	paths map[string]*PathMetrics

	totalResolves uint64
	totalErrors   uint64
	totalDuration time.Duration
}

// PathMetrics holds metrics for one option path.
type PathMetrics struct {
	Path          string
	ResolveCount  uint64
	ErrorCount    uint64
	BySource      map[Source]uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastSource    Source
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{paths: make(map[string]*PathMetrics)}
}

// RecordResolve records one resolution.
func (m *Metrics) RecordResolve(path string, src Source, d time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalResolves++
	m.totalDuration += d
	if err != nil {
		m.totalErrors++
	}

	pm := m.paths[path]
	if pm == nil {
		pm = &PathMetrics{Path: path, BySource: make(map[Source]uint64)}
		m.paths[path] = pm
	}
	pm.ResolveCount++
	pm.TotalDuration += d
	pm.BySource[src]++
	pm.LastSource = src
	if d > pm.MaxDuration {
		pm.MaxDuration = d
	}
	if err != nil {
		pm.ErrorCount++
	}
}

// TotalResolves returns the number of resolutions.
func (m *Metrics) TotalResolves() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalResolves
}

// TotalErrors returns the number of failed resolutions.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// AverageDuration returns the average resolution time.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.totalResolves == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalResolves)
}

// PathStats returns a copy of the metrics for path, or nil.
func (m *Metrics) PathStats(path string) *PathMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pm := m.paths[path]
	if pm == nil {
		return nil
	}
	cp := *pm
	cp.BySource = make(map[Source]uint64, len(pm.BySource))
	for k, v := range pm.BySource {
		cp.BySource[k] = v
	}
	return &cp
}

// Paths returns every recorded path, sorted.
func (m *Metrics) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.paths))
	for p := range m.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.paths = make(map[string]*PathMetrics)
	m.totalResolves = 0
	m.totalErrors = 0
	m.totalDuration = 0
}
