// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with merged updates and reload propagation.

package control

import (
	"math"
	"sync"
)

// Recognized configuration keys.
const (
	// KeyAllocLimit is the per-buffer allocation ceiling in bytes (int64).
	// Zero or absent restores the platform default.
	KeyAllocLimit = "buffer.alloc_limit"
	// KeyTraceDepth is the number of allocation events kept by AllocTrace (int).
	KeyTraceDepth = "trace.depth"
)

// ConfigStore is a dynamic key/value map with snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func(map[string]any)
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: make(map[string]any),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshotLocked()
}

// Int64 returns key as int64, accepting any integer type. ok is false when
// the key is absent or not an integer.
func (cs *ConfigStore) Int64(key string) (n int64, ok bool) {
	cs.mu.RLock()
	v, found := cs.config[key]
	cs.mu.RUnlock()
	if !found {
		return 0, false
	}
	return toInt64(v)
}

// SetConfig merges new values and runs every reload listener with the
// merged snapshot before returning.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	snap := cs.snapshotLocked()
	listeners := append(([]func(map[string]any))(nil), cs.listeners...)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// OnReload registers a listener called with the merged snapshot on every
// SetConfig.
func (cs *ConfigStore) OnReload(fn func(map[string]any)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

func (cs *ConfigStore) snapshotLocked() map[string]any {
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// toInt64 accepts every integer kind that fits in int64 and whole-number
// floats, which is what JSON-decoded config delivers.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	default:
		return 0, false
	}
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
