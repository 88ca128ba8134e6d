// Package api
// Author: momentics
//
// Owned element storage and the sequence contract layered on top of it.
//
// A Buffer owns exactly one contiguous allocation. It is never shared: moving
// it transfers the allocation and leaves the source empty.

package api

// Buffer describes a single-owner, fixed-capacity element region.
type Buffer[T any] interface {
	// Cap returns the number of slots the region holds.
	Cap() int

	// At returns a reference to slot i. i must be below Cap.
	At(i int) *T

	// Release hands the raw region to the caller and empties the buffer.
	// The caller becomes responsible for the returned storage.
	Release() []T

	// Free drops the region. Calling Free on an empty buffer is a no-op.
	Free()
}

// Sequence is the read side of a growable contiguous container.
type Sequence[T any] interface {
	// Len returns the number of live elements.
	Len() int

	// Cap returns the number of elements storable without reallocation.
	Cap() int

	// At returns element i, or an error wrapping ErrIndexOutOfRange.
	At(i int) (T, error)
}

// AllocStats aggregates process-wide buffer allocation accounting.
type AllocStats struct {
	Allocs    int64 // successful allocations
	Frees     int64 // allocations dropped through Free
	Releases  int64 // allocations handed off through Release
	Failures  int64 // rejected allocation requests
	BytesLive int64 // bytes held by buffers not yet freed or released
	Limit     int64 // active allocation ceiling in bytes, 0 means none
}
