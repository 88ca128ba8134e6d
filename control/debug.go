// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry for buffer and allocation introspection.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-seq/core/buffer"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Names returns registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RegisterBufferProbes publishes allocation accounting and, when trace is
// non-nil, the recent allocation events.
func RegisterBufferProbes(dp *DebugProbes, trace *AllocTrace) {
	dp.RegisterProbe("buffer.stats", func() any { return buffer.Stats() })
	dp.RegisterProbe("buffer.limit", func() any { return buffer.Limit() })
	if trace != nil {
		dp.RegisterProbe("buffer.trace", func() any { return trace.Recent() })
	}
}
