//go:build !linux && !darwin && !freebsd

package mem

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Mmap on platforms without anonymous mappings pre-reserves the full maximum
// as a byte slice. The base address is still stable across growth, matching
// the unix implementation's contract.
type Mmap struct {
	full []byte
	size uint32
	max  uint32 // pages
}

// NewMmap reserves max pages up front and exposes the first initial pages.
func NewMmap(initial, max uint32) (*Mmap, error) {
	if max == 0 || initial > max {
		return nil, fmt.Errorf("mem: invalid page bounds (initial=%d, max=%d)", initial, max)
	}
	if uint64(max)*format.PageSize > uint64(^uint32(0)) {
		return nil, fmt.Errorf("mem: max pages %d exceeds 32-bit address space", max)
	}
	return &Mmap{
		full: make([]byte, max*format.PageSize),
		size: initial * format.PageSize,
		max:  max,
	}, nil
}

func (m *Mmap) Bytes() []byte { return m.full[:m.size] }

func (m *Mmap) Size() uint32 { return m.size }

// Pages returns the current size in pages.
func (m *Mmap) Pages() uint32 { return m.size / format.PageSize }

// Grow widens the visible window by pages pages.
func (m *Mmap) Grow(pages uint32) error {
	if pages == 0 {
		return nil
	}
	if pages > m.max-m.Pages() {
		return ErrRefused
	}
	m.size += pages * format.PageSize
	return nil
}

// Close releases the reservation. The memory must not be used afterwards.
func (m *Mmap) Close() error {
	m.full = nil
	m.size = 0
	return nil
}

// Compile-time interface check
var _ Memory = (*Mmap)(nil)
