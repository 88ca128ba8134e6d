// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Single-owner element storage for hioload-seq containers.
//
// A Buffer owns exactly one contiguous allocation sized at construction time.
// It is move-only: value copies are rejected by `go vet` (copylocks), and
// Move/Swap transfer the allocation in O(1). Every allocation passes through
// a process-wide ceiling and is counted in atomic accounting, see Stats.
//
// Platform-specific ceiling probes live in ceiling_linux.go and
// ceiling_windows.go; other platforms run without a default ceiling.
package buffer
