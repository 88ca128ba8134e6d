// File: core/vector/capacity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity management: growth policy, reserve, resize, clear.

package vector

import (
	"math"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/buffer"
)

// GrowCapacity returns the capacity an append or insert grows to when c is
// exhausted: max(1, 2*c).
func GrowCapacity(c int) int {
	if c <= 0 {
		return 1
	}
	if c > math.MaxInt/2 {
		return math.MaxInt
	}
	return 2 * c
}

// Reserve ensures Cap() >= n. A request at or below the current capacity
// does nothing. Otherwise storage of exactly n slots replaces the current
// one and every outstanding iterator, reference and Slice view is
// invalidated. On failure v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}
	return v.realloc(n)
}

// Resize sets Len to n.
//
// Shrinking only lowers Len; capacity and the vacated slots are kept.
// Growing past Cap reserves exactly n. Growing within Cap resets slots
// [Len, n) to the zero value without reallocating.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "negative size").
			WithContext("size", n)
	}
	switch {
	case n > v.buf.Cap():
		if err := v.realloc(n); err != nil {
			return err
		}
	case n > v.size:
		clear(v.buf.Slots()[v.size:n])
	}
	v.size = n
	return nil
}

// Clear sets Len to zero and keeps the storage.
func (v *Vector[T]) Clear() { v.size = 0 }

// ShrinkToFit reallocates to exactly Len slots, dropping the storage
// entirely when v is empty.
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.size == v.buf.Cap():
		return nil
	case v.size == 0:
		v.Free()
		return nil
	}
	return v.realloc(v.size)
}

// grow makes room for one more element following the growth policy.
func (v *Vector[T]) grow() error {
	return v.realloc(GrowCapacity(v.buf.Cap()))
}

// realloc moves the live elements into fresh storage of n slots.
func (v *Vector[T]) realloc(n int) error {
	nb, err := buffer.New[T](n)
	if err != nil {
		return err
	}
	copy(nb.Slots(), v.live())
	v.replace(&nb)
	return nil
}
