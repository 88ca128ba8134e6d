// File: core/vector/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Positional iterators with reallocation-aware validity.

package vector

// Iterator is a position in a Vector. It stays usable until the vector's
// storage changes (reallocation, Swap, Move, Free); Valid reports that.
type Iterator[T any] struct {
	v   *Vector[T]
	i   int
	gen uint64
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return v.iterAt(0) }

// End returns the past-the-last position, a valid insertion point.
func (v *Vector[T]) End() Iterator[T] { return v.iterAt(v.size) }

// IterAt returns an iterator to index i. i may equal Len.
func (v *Vector[T]) IterAt(i int) Iterator[T] {
	if debug {
		assertf(i >= 0 && i <= v.size, "iterator position %d out of range [0, %d]", i, v.size)
	}
	return v.iterAt(i)
}

func (v *Vector[T]) iterAt(i int) Iterator[T] {
	return Iterator[T]{v: v, i: i, gen: v.gen}
}

// Index returns the position as an element index.
func (it Iterator[T]) Index() int { return it.i }

// Valid reports whether the iterator still refers to the vector's current
// storage and lies within [0, Len].
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.gen == it.v.gen && it.i >= 0 && it.i <= it.v.size
}

// Value returns the element at the position. Precondition: dereferenceable.
func (it Iterator[T]) Value() T { return it.v.Get(it.i) }

// Ref returns a reference to the element at the position.
// Precondition: dereferenceable.
func (it Iterator[T]) Ref() *T { return it.v.Ref(it.i) }

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return it.Advance(1) }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Advance(-1) }

// Advance returns the position n elements away.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.i += n
	return it
}

// Equal reports whether both iterators denote the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.i == other.i
}

// Distance returns other.Index() - it.Index().
func (it Iterator[T]) Distance(other Iterator[T]) int { return other.i - it.i }
