// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Metrics registry fed by buffer allocation accounting.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-seq/core/buffer"
)

// Metric names published by Collect.
const (
	MetricAllocs    = "buffer.allocs"
	MetricFrees     = "buffer.frees"
	MetricReleases  = "buffer.releases"
	MetricFailures  = "buffer.failures"
	MetricBytesLive = "buffer.bytes_live"
	MetricLimit     = "buffer.limit"
)

// MetricsRegistry holds named metric values.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Collect copies the current buffer accounting into the registry.
func (mr *MetricsRegistry) Collect() {
	st := buffer.Stats()
	mr.mu.Lock()
	mr.metrics[MetricAllocs] = st.Allocs
	mr.metrics[MetricFrees] = st.Frees
	mr.metrics[MetricReleases] = st.Releases
	mr.metrics[MetricFailures] = st.Failures
	mr.metrics[MetricBytesLive] = st.BytesLive
	mr.metrics[MetricLimit] = st.Limit
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last Set or Collect.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
