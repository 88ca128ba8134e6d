//go:build windows

// File: core/buffer/ceiling_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows default ceiling: total user-mode virtual address space.

package buffer

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

func platformCeiling() int64 {
	var ms windows.MemoryStatusEx
	ms.Length = uint32(unsafe.Sizeof(ms))
	if err := windows.GlobalMemoryStatusEx(&ms); err != nil {
		return 0
	}
	if ms.TotalVirtual == 0 || ms.TotalVirtual > math.MaxInt64 {
		return 0
	}
	return int64(ms.TotalVirtual)
}
