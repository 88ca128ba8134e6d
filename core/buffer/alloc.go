// File: core/buffer/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocation ceiling, process-wide accounting and the event observer hook.

package buffer

import (
	"math"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-seq/api"
)

// EventKind classifies an accounting event.
type EventKind uint8

const (
	EventAlloc EventKind = iota + 1
	EventFree
	EventRelease
	EventFailure
)

func (k EventKind) String() string {
	switch k {
	case EventAlloc:
		return "alloc"
	case EventFree:
		return "free"
	case EventRelease:
		return "release"
	case EventFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event describes one allocation-side transition of a buffer.
type Event struct {
	Kind     EventKind
	Elements int
	Bytes    int64
	Err      error
}

var (
	limit    atomic.Int64
	observer atomic.Pointer[func(Event)]

	allocs    atomic.Int64
	frees     atomic.Int64
	releases  atomic.Int64
	failures  atomic.Int64
	bytesLive atomic.Int64
)

func init() {
	limit.Store(platformCeiling())
}

// SetLimit installs a process-wide allocation ceiling in bytes for a single
// buffer. n <= 0 restores the platform default (which may be unlimited).
func SetLimit(n int64) {
	if n <= 0 {
		n = platformCeiling()
	}
	limit.Store(n)
}

// Limit returns the active allocation ceiling in bytes; 0 means none.
func Limit() int64 { return limit.Load() }

// SetObserver registers fn to receive every accounting event.
// A nil fn detaches the current observer. fn runs on the allocating goroutine.
func SetObserver(fn func(Event)) {
	if fn == nil {
		observer.Store(nil)
		return
	}
	observer.Store(&fn)
}

// Stats returns a snapshot of process-wide allocation accounting.
func Stats() api.AllocStats {
	return api.AllocStats{
		Allocs:    allocs.Load(),
		Frees:     frees.Load(),
		Releases:  releases.Load(),
		Failures:  failures.Load(),
		BytesLive: bytesLive.Load(),
		Limit:     limit.Load(),
	}
}

// SizeOf returns the byte footprint of n elements of T and whether it fits
// in an int64 without overflow.
func SizeOf[T any](n int) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	var zero T
	hi, lo := bits.Mul64(uint64(n), uint64(unsafe.Sizeof(zero)))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

func bytesOf[T any](n int) int64 {
	sz, _ := SizeOf[T](n)
	return sz
}

// allocate is the only place hioload-seq obtains element storage.
func allocate[T any](n int) ([]T, error) {
	sz, ok := SizeOf[T](n)
	if !ok {
		err := api.NewError(api.ErrCodeAllocationFailure, "buffer size overflows").
			WithContext("elements", n)
		account(EventFailure, n, 0, err)
		return nil, err
	}
	if lim := limit.Load(); lim > 0 && sz > lim {
		err := api.NewError(api.ErrCodeAllocationFailure, "buffer exceeds allocation ceiling").
			WithContext("elements", n).
			WithContext("bytes", sz).
			WithContext("limit", lim)
		account(EventFailure, n, sz, err)
		return nil, err
	}
	data := make([]T, n)
	account(EventAlloc, n, sz, nil)
	return data, nil
}

func account(kind EventKind, n int, sz int64, err error) {
	switch kind {
	case EventAlloc:
		allocs.Add(1)
		bytesLive.Add(sz)
	case EventFree:
		frees.Add(1)
		bytesLive.Add(-sz)
	case EventRelease:
		releases.Add(1)
		bytesLive.Add(-sz)
	case EventFailure:
		failures.Add(1)
	}
	if fn := observer.Load(); fn != nil {
		(*fn)(Event{Kind: kind, Elements: n, Bytes: sz, Err: err})
	}
}
