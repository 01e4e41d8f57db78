//go:build linux || darwin || freebsd

package mem

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/heapkit/internal/format"
)

// Mmap is a linear memory backed by an anonymous mapping. The full maximum
// footprint is reserved at creation, so Grow only widens the visible window
// and the base address never moves. This matches how real sandbox hosts back
// guest memory, and makes pointers into Bytes() stable across growth.
type Mmap struct {
	full []byte // whole reservation, len == max pages
	size uint32 // visible bytes
	max  uint32 // pages
}

// NewMmap reserves max pages of anonymous memory and exposes the first
// initial pages. The mapping is zero-filled by the kernel.
func NewMmap(initial, max uint32) (*Mmap, error) {
	if max == 0 || initial > max {
		return nil, fmt.Errorf("mem: invalid page bounds (initial=%d, max=%d)", initial, max)
	}
	if uint64(max)*format.PageSize > uint64(^uint32(0)) {
		return nil, fmt.Errorf("mem: max pages %d exceeds 32-bit address space", max)
	}
	full, err := unix.Mmap(-1, 0, int(max)*format.PageSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mem: failed to reserve %d pages: %w", max, err)
	}
	return &Mmap{
		full: full,
		size: initial * format.PageSize,
		max:  max,
	}, nil
}

func (m *Mmap) Bytes() []byte { return m.full[:m.size] }

func (m *Mmap) Size() uint32 { return m.size }

// Pages returns the current size in pages.
func (m *Mmap) Pages() uint32 { return m.size / format.PageSize }

// Grow widens the visible window by pages pages. The reservation already
// exists, so this never moves the base address.
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
	if m.full == nil {
		return nil
	}
	err := unix.Munmap(m.full)
	m.full = nil
	m.size = 0
	return err
}

// Compile-time interface check
var _ Memory = (*Mmap)(nil)
