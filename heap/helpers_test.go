package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/mem"
)

// newTestHeap creates a heap over a fresh Slice memory with the given page
// bounds, reset to address 0.
func newTestHeap(t *testing.T, initial, max uint32) *Heap {
	t.Helper()
	m, err := mem.NewSlice(initial, max)
	require.NoError(t, err)
	return New(m, nil)
}

// stubMemory wraps a Memory and refuses growth after a set number of
// successful Grow calls, simulating a host that hits its own ceiling
// mid-run.
type stubMemory struct {
	mem.Memory
	growsLeft int
}

func (s *stubMemory) Grow(pages uint32) error {
	if s.growsLeft <= 0 {
		return mem.ErrRefused
	}
	s.growsLeft--
	return s.Memory.Grow(pages)
}
