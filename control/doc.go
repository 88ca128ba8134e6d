// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime configuration, metrics and debug introspection for hioload-seq
// buffers.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads and merged updates with reload listeners
//   - Binding of config keys to the process-wide allocation ceiling
//   - Metrics collection from buffer allocation accounting
//   - Debug probes and a bounded trace of recent allocation events
//
// Containers never depend on this package; it sits beside them and drives
// the knobs exposed by core/buffer.
package control
