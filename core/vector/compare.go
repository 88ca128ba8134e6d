// File: core/vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element-wise equality and lexicographic ordering. A nil *Vector compares
// as empty.

package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal elements in
// index order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare orders a and b lexicographically and returns -1, 0 or +1.
// A proper prefix orders before the longer vector.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.live(), b.live())
}

// CompareFunc is Compare with a caller-supplied three-way element comparison.
func CompareFunc[T any](a, b *Vector[T], c func(T, T) int) int {
	return slices.CompareFunc(a.live(), b.live(), c)
}

// Less reports a < b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports a <= b.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports a > b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports a >= b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
