// control/trace.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO of recent buffer allocation events.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-seq/core/buffer"
)

// DefaultTraceDepth is the number of events kept when no depth is configured.
const DefaultTraceDepth = 64

// AllocTrace keeps the most recent buffer events, oldest first.
type AllocTrace struct {
	mu     sync.Mutex
	events *queue.Queue
	depth  int
}

// NewAllocTrace creates a trace holding at most depth events.
// depth <= 0 selects DefaultTraceDepth.
func NewAllocTrace(depth int) *AllocTrace {
	if depth <= 0 {
		depth = DefaultTraceDepth
	}
	return &AllocTrace{events: queue.New(), depth: depth}
}

// Observe records e, evicting the oldest event once depth is reached.
// It has the signature expected by buffer.SetObserver.
func (tr *AllocTrace) Observe(e buffer.Event) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events.Add(e)
	tr.trimLocked()
}

// Attach installs tr as the process-wide buffer observer.
func (tr *AllocTrace) Attach() { buffer.SetObserver(tr.Observe) }

// Detach removes any process-wide buffer observer.
func (tr *AllocTrace) Detach() { buffer.SetObserver(nil) }

// SetDepth changes the bound, dropping the oldest events if needed.
func (tr *AllocTrace) SetDepth(depth int) {
	if depth <= 0 {
		depth = DefaultTraceDepth
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.depth = depth
	tr.trimLocked()
}

// Depth returns the current bound.
func (tr *AllocTrace) Depth() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.depth
}

// Recent returns a copy of the recorded events, oldest first.
func (tr *AllocTrace) Recent() []buffer.Event {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := make([]buffer.Event, tr.events.Length())
	for i := range out {
		out[i] = tr.events.Get(i).(buffer.Event)
	}
	return out
}

func (tr *AllocTrace) trimLocked() {
	for tr.events.Length() > tr.depth {
		tr.events.Remove()
	}
}
