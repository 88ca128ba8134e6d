// File: core/vector/access.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element access and structural mutation.

package vector

import (
	"iter"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/buffer"
)

// Get returns element i. Precondition: 0 <= i < Len.
func (v *Vector[T]) Get(i int) T {
	if debug {
		assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	}
	return v.buf.Slots()[i]
}

// Ref returns a reference to element i, valid until the next reallocation.
// Precondition: 0 <= i < Len.
func (v *Vector[T]) Ref(i int) *T {
	if debug {
		assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	}
	return v.buf.At(i)
}

// Set overwrites element i. Precondition: 0 <= i < Len.
func (v *Vector[T]) Set(i int, x T) {
	if debug {
		assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	}
	v.buf.Slots()[i] = x
}

// At returns element i, or an error matching api.ErrIndexOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf.Slots()[i], nil
}

// RefAt is the checked form of Ref.
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if err := v.check(i); err != nil {
		return nil, err
	}
	return v.buf.At(i), nil
}

// Front returns the first element. Precondition: Len > 0.
func (v *Vector[T]) Front() T { return v.Get(0) }

// Back returns the last element. Precondition: Len > 0.
func (v *Vector[T]) Back() T { return v.Get(v.size - 1) }

// PushBack appends x, growing to max(1, 2*Cap) when v is full.
// On allocation failure v is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	if v.size == v.buf.Cap() {
		if err := v.grow(); err != nil {
			return err
		}
	}
	v.buf.Slots()[v.size] = x
	v.size++
	return nil
}

// PopBack drops the last element. The vacated slot is not cleared.
// Precondition: Len > 0.
func (v *Vector[T]) PopBack() {
	if debug {
		assertf(v.size > 0, "PopBack on empty vector")
	}
	v.size--
}

// Insert places x before pos and returns an iterator to it. pos may be End.
// With spare capacity the tail shifts right by one; otherwise the elements
// are relocated once into storage of max(1, 2*Cap) with x already in place.
// On allocation failure v is unchanged.
func (v *Vector[T]) Insert(pos Iterator[T], x T) (Iterator[T], error) {
	if debug {
		assertf(pos.v == v, "iterator belongs to another vector")
		assertf(pos.gen == v.gen, "stale iterator")
	}
	if err := v.insert(pos.i, x); err != nil {
		return pos, err
	}
	return v.iterAt(pos.i), nil
}

// InsertAt places x at index i, 0 <= i <= Len.
func (v *Vector[T]) InsertAt(i int, x T) error {
	if i < 0 || i > v.size {
		return outOfRange(i, v.size)
	}
	return v.insert(i, x)
}

func (v *Vector[T]) insert(i int, x T) error {
	if debug {
		assertf(i >= 0 && i <= v.size, "insert position %d out of range [0, %d]", i, v.size)
	}
	if v.size < v.buf.Cap() {
		s := v.buf.Slots()
		copy(s[i+1:v.size+1], s[i:v.size])
		s[i] = x
		v.size++
		return nil
	}
	nb, err := buffer.New[T](GrowCapacity(v.buf.Cap()))
	if err != nil {
		return err
	}
	src, dst := v.live(), nb.Slots()
	copy(dst, src[:i])
	dst[i] = x
	copy(dst[i+1:], src[i:])
	v.replace(&nb)
	v.size++
	return nil
}

// Erase removes the element at pos, shifting the tail left by one, and
// returns an iterator to the element now at pos's index (End if pos was
// the last element). The vacated trailing slot is not cleared.
// Precondition: pos is dereferenceable.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	if debug {
		assertf(pos.v == v, "iterator belongs to another vector")
		assertf(pos.gen == v.gen, "stale iterator")
	}
	v.erase(pos.i)
	return v.iterAt(pos.i)
}

// EraseAt removes element i, 0 <= i < Len.
func (v *Vector[T]) EraseAt(i int) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.erase(i)
	return nil
}

func (v *Vector[T]) erase(i int) {
	if debug {
		assertf(i >= 0 && i < v.size, "erase position %d out of range [0, %d)", i, v.size)
	}
	s := v.buf.Slots()
	copy(s[i:v.size-1], s[i+1:v.size])
	v.size--
}

// Swap exchanges the contents of v and other in O(1). Elements keep their
// storage; iterators into either vector are invalidated.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.gen++
	other.gen++
}

// Slice returns the live elements as a slice sharing v's storage. Its
// capacity is clipped to Len. The view is invalidated by reallocation.
func (v *Vector[T]) Slice() []T { return v.live() }

// All yields index/value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Slots()[i]) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.Slots()[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) check(i int) error {
	if i < 0 || i >= v.size {
		return outOfRange(i, v.size)
	}
	return nil
}

func outOfRange(i, size int) error {
	return api.NewError(api.ErrCodeIndexOutOfRange, "index out of range").
		WithContext("index", i).
		WithContext("size", size)
}
