//go:build !linux && !windows

// File: core/buffer/ceiling_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

// platformCeiling: no probe on this platform, run without a default ceiling.
func platformCeiling() int64 { return 0 }
