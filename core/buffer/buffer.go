// File: core/buffer/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "github.com/momentics/hioload-seq/api"

// Compile-time interface compliance.
var _ api.Buffer[int] = (*Buffer[int])(nil)

// noCopy trips the copylocks vet check on value copies of the embedding type.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns a fixed-capacity contiguous region of T.
// The zero value is an empty buffer with no allocation.
type Buffer[T any] struct {
	_    noCopy
	data []T
}

// New allocates storage for exactly n zero-valued elements.
// n == 0 yields an empty buffer without touching the allocator.
func New[T any](n int) (Buffer[T], error) {
	if n == 0 {
		return Buffer[T]{}, nil
	}
	data, err := allocate[T](n)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{data: data}, nil
}

// Cap returns the number of slots owned.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Empty reports whether the buffer owns no allocation.
func (b *Buffer[T]) Empty() bool { return b.data == nil }

// At returns a reference to slot i. i must be below Cap; only the runtime's
// slice bound check guards it.
func (b *Buffer[T]) At(i int) *T { return &b.data[i] }

// Slots exposes all [0, Cap) slots. The view dies with Free, Release or Swap.
func (b *Buffer[T]) Slots() []T { return b.data }

// Swap exchanges the owned regions of b and other without touching elements.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Move transfers ownership to the returned buffer; b is left empty.
func (b *Buffer[T]) Move() Buffer[T] {
	data := b.data
	b.data = nil
	return Buffer[T]{data: data}
}

// Release hands the raw region to the caller and resets b to empty.
func (b *Buffer[T]) Release() []T {
	data := b.data
	if data == nil {
		return nil
	}
	b.data = nil
	account(EventRelease, len(data), bytesOf[T](len(data)), nil)
	return data
}

// Free drops the owned region exactly once. Freeing an empty buffer is a no-op.
func (b *Buffer[T]) Free() {
	if b.data == nil {
		return
	}
	n := len(b.data)
	clear(b.data)
	b.data = nil
	account(EventFree, n, bytesOf[T](n), nil)
}
