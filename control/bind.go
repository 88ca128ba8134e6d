// control/bind.go
// Author: momentics <momentics@gmail.com>
//
// Wiring of configuration keys to buffer knobs.

package control

import (
	"log"

	"github.com/momentics/hioload-seq/core/buffer"
)

// Bind applies KeyAllocLimit to buffer.SetLimit and KeyTraceDepth to trace
// (if non-nil) now and on every subsequent SetConfig.
func Bind(cs *ConfigStore, trace *AllocTrace) {
	apply := func(cfg map[string]any) {
		if v, ok := cfg[KeyAllocLimit]; ok {
			if n, ok := toInt64(v); ok {
				buffer.SetLimit(n)
				log.Printf("[control] allocation ceiling set to %d bytes", buffer.Limit())
			} else {
				log.Printf("[control] ignoring %s: unsupported value %v", KeyAllocLimit, v)
			}
		}
		if trace == nil {
			return
		}
		if v, ok := cfg[KeyTraceDepth]; ok {
			if n, ok := toInt64(v); ok {
				trace.SetDepth(int(n))
			} else {
				log.Printf("[control] ignoring %s: unsupported value %v", KeyTraceDepth, v)
			}
		}
	}
	cs.OnReload(apply)
	apply(cs.GetSnapshot())
}
