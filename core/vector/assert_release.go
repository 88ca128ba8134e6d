//go:build !seqdebug

// File: core/vector/assert_release.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Release build: assertions compile away.

package vector

const debug = false

func assertf(bool, string, ...any) {}
