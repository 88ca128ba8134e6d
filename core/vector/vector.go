// File: core/vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vector type, construction paths, copy and move.

package vector

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/buffer"
)

// Compile-time interface compliance.
var _ api.Sequence[int] = (*Vector[int])(nil)

// Vector is a growable sequence of T stored contiguously in one owned buffer.
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	buf  buffer.Buffer[T]
	size int
	gen  uint64 // bumped on every storage change
}

// Reservation requests capacity without live elements. Build one with Reserve.
type Reservation struct {
	n int
}

// Reserve returns a construction hint for NewReserved.
func Reserve(n int) Reservation { return Reservation{n: n} }

// Capacity returns the requested capacity.
func (r Reservation) Capacity() int { return r.n }

// New returns an empty vector. Nothing is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewReserved allocates exactly r.Capacity() slots and stays empty.
func NewReserved[T any](r Reservation) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.Reserve(r.n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewSize returns a vector of n zero values with capacity n.
func NewSize[T any](n int) (*Vector[T], error) {
	buf, err := buffer.New[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{size: n}
	v.buf.Swap(&buf)
	return v, nil
}

// NewFilled returns a vector of n copies of fill with capacity n.
func NewFilled[T any](n int, fill T) (*Vector[T], error) {
	v, err := NewSize[T](n)
	if err != nil {
		return nil, err
	}
	s := v.buf.Slots()
	for i := range s {
		s[i] = fill
	}
	return v, nil
}

// Of returns a vector holding vals in order with capacity len(vals).
func Of[T any](vals ...T) (*Vector[T], error) {
	buf, err := buffer.New[T](len(vals))
	if err != nil {
		return nil, err
	}
	copy(buf.Slots(), vals)
	v := &Vector[T]{size: len(vals)}
	v.buf.Swap(&buf)
	return v, nil
}

// MustOf is like Of but panics if the allocation is refused.
func MustOf[T any](vals ...T) *Vector[T] {
	v, err := Of(vals...)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of elements storable without reallocation.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// Empty reports whether Len is zero.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Clone returns an independent deep copy sized to v.Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{}
	if err := out.CopyFrom(v); err != nil {
		return nil, err
	}
	return out, nil
}

// CloneFunc is Clone with a per-element copier that may fail.
func (v *Vector[T]) CloneFunc(fn func(T) (T, error)) (*Vector[T], error) {
	out := &Vector[T]{}
	if err := out.CopyFromFunc(v, fn); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom replaces the contents of v with a copy of src's live elements.
// The new storage is populated before it replaces the old one, so v is
// unchanged when the allocation fails.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	return v.CopyFromFunc(src, nil)
}

// CopyFromFunc is CopyFrom with a per-element copier. If fn fails for any
// element, v is left exactly as it was and the returned *api.Error wraps
// fn's error with the failing index.
func (v *Vector[T]) CopyFromFunc(src *Vector[T], fn func(T) (T, error)) error {
	if v == src {
		return nil
	}
	live := src.live()
	buf, err := buffer.New[T](len(live))
	if err != nil {
		return err
	}
	if fn == nil {
		copy(buf.Slots(), live)
	} else {
		dst := buf.Slots()
		for i, x := range live {
			y, err := fn(x)
			if err != nil {
				buf.Free()
				return api.NewError(api.ErrCodeInternal, "element copy failed").
					WithContext("index", i).
					WithCause(err)
			}
			dst[i] = y
		}
	}
	v.replace(&buf)
	v.size = len(live)
	return nil
}

// Move transfers v's storage to a new vector and leaves v empty with no
// allocation.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	out.MoveFrom(v)
	return out
}

// MoveFrom drops v's storage and takes over src's. src is left empty with
// no allocation. Moving a vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.Free()
	v.buf.Swap(&src.buf)
	v.size, src.size = src.size, 0
	v.gen++
	src.gen++
}

// Free drops the storage. v stays usable as an empty vector.
func (v *Vector[T]) Free() {
	v.buf.Free()
	v.size = 0
	v.gen++
}

// Release hands the live elements to the caller without copying and leaves
// v empty with no allocation. The returned slice keeps the spare capacity.
func (v *Vector[T]) Release() []T {
	n := v.size
	data := v.buf.Release()
	v.size = 0
	v.gen++
	return data[:n]
}

// live returns the [0, Len) view, tolerating a nil receiver.
func (v *Vector[T]) live() []T {
	if v == nil || v.size == 0 {
		return nil
	}
	return v.buf.Slots()[:v.size:v.size]
}

// replace installs nb as v's storage and frees the previous one.
func (v *Vector[T]) replace(nb *buffer.Buffer[T]) {
	v.buf.Swap(nb)
	nb.Free()
	v.gen++
}
