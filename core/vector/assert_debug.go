//go:build seqdebug

// File: core/vector/assert_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Precondition assertions, enabled by the seqdebug build tag.

package vector

import "fmt"

const debug = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("vector: "+format, args...))
	}
}
