package heap

import (
	"testing"

	"github.com/joshuapare/heapkit/mem"
)

// BenchmarkHeap_Alloc measures raw bump allocation throughput. The heap is
// reset whenever it nears the ceiling so the benchmark never hits the
// exhaustion path.
func BenchmarkHeap_Alloc(b *testing.B) {
	m, err := mem.NewSlice(64, 64) // pre-grown: 4 MiB, no host round-trips
	if err != nil {
		b.Fatal(err)
	}
	h := New(m, nil)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		size := uint32(16 + (i%64)*4)
		if h.Used() > 3<<20 {
			h.Reset(0)
		}
		if _, _, err := h.Alloc(size); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHeap_AllocFreePair measures the tight alloc/free cycle that the
// tail-reclamation trick exists for: the cursor never advances.
func BenchmarkHeap_AllocFreePair(b *testing.B) {
	m, err := mem.NewSlice(1, 64)
	if err != nil {
		b.Fatal(err)
	}
	h := New(m, nil)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		p, _, err := h.Alloc(128)
		if err != nil {
			b.Fatal(err)
		}
		h.Free(p)
	}
}

// BenchmarkHeap_AllocZero measures the zeroing allocation path.
func BenchmarkHeap_AllocZero(b *testing.B) {
	m, err := mem.NewSlice(64, 64)
	if err != nil {
		b.Fatal(err)
	}
	h := New(m, nil)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		p, _, err := h.AllocZero(16, 16)
		if err != nil {
			b.Fatal(err)
		}
		h.Free(p)
	}
}
