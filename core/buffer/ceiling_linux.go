//go:build linux

// File: core/buffer/ceiling_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux default ceiling: the soft RLIMIT_AS of the process.

package buffer

import (
	"math"

	"golang.org/x/sys/unix"
)

// platformCeiling returns the soft address-space limit, or 0 when unlimited
// or unreadable.
func platformCeiling() int64 {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &rl); err != nil {
		return 0
	}
	if rl.Cur == 0 || rl.Cur > math.MaxInt64 {
		return 0
	}
	return int64(rl.Cur)
}
