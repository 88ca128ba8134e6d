// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-seq containers, with plain slices as
// the baseline.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-seq/core/buffer"
	"github.com/momentics/hioload-seq/core/vector"
)

// BenchmarkVectorPushBack measures amortized append cost from empty.
func BenchmarkVectorPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 1024; j++ {
			if err := v.PushBack(j); err != nil {
				b.Fatal(err)
			}
		}
		v.Free()
	}
}

// BenchmarkSliceAppend is the baseline for BenchmarkVectorPushBack.
func BenchmarkSliceAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s []int
		for j := 0; j < 1024; j++ {
			s = append(s, j)
		}
		_ = s
	}
}

// BenchmarkVectorReservedPushBack appends into pre-reserved capacity.
func BenchmarkVectorReservedPushBack(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := vector.NewReserved[int](vector.Reserve(1024))
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
		v.Free()
	}
}

// BenchmarkVectorInsertFront measures the worst-case shifting insert.
func BenchmarkVectorInsertFront(b *testing.B) {
	v, err := vector.NewReserved[int](vector.Reserve(4096))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == v.Cap() {
			v.Clear()
		}
		if _, err := v.Insert(v.Begin(), i); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBufferAllocFree measures the owning buffer round trip including
// ceiling check and accounting.
func BenchmarkBufferAllocFree(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf, err := buffer.New[byte](4096)
			if err != nil {
				b.Fatal(err)
			}
			buf.Free()
		}
	})
}
