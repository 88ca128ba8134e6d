// Package vector
// Author: momentics <momentics@gmail.com>
//
// Growable contiguous sequence container over a single-owner buffer.
//
// Vector keeps its live elements in slots [0, Len) of one owned
// buffer.Buffer. Appends and inserts that exhaust capacity reallocate to
// max(1, 2*Cap), moving live elements once. Every reallocation invalidates
// all previously obtained iterators, references and Slice views; Iterator.Valid
// reports whether the storage an iterator was taken from is still current.
//
// A Vector is not safe for concurrent mutation. Concurrent reads of a vector
// that nobody mutates are fine.
//
// Unchecked accessors (Get, Ref, Set, Front, Back, PopBack, Insert and Erase
// positions) carry preconditions. Building with the seqdebug tag turns them
// into explicit assertions; release builds pay no extra branch.
package vector
