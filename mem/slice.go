package mem

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Slice is a linear memory backed by an ordinary byte slice, modeled on the
// page-granular memories of WASM runtimes. Growth appends zeroed pages and
// may relocate the backing array; previous contents are preserved at the
// same offsets.
type Slice struct {
	buf []byte
	max uint32 // pages
}

// NewSlice creates a Slice memory with initial pages already mapped and a
// hard cap of max pages. max must keep the byte size within uint32 address
// range (at most 65535 pages).
func NewSlice(initial, max uint32) (*Slice, error) {
	if max == 0 || initial > max {
		return nil, fmt.Errorf("mem: invalid page bounds (initial=%d, max=%d)", initial, max)
	}
	if uint64(max)*format.PageSize > uint64(^uint32(0)) {
		return nil, fmt.Errorf("mem: max pages %d exceeds 32-bit address space", max)
	}
	return &Slice{
		buf: make([]byte, initial*format.PageSize),
		max: max,
	}, nil
}

func (m *Slice) Bytes() []byte { return m.buf }

func (m *Slice) Size() uint32 { return uint32(len(m.buf)) }

// Pages returns the current size in pages.
func (m *Slice) Pages() uint32 { return m.Size() / format.PageSize }

// Grow appends pages zeroed pages, refusing requests past the cap.
func (m *Slice) Grow(pages uint32) error {
	if pages == 0 {
		return nil
	}
	if pages > m.max-m.Pages() {
		return ErrRefused
	}
	m.buf = append(m.buf, make([]byte, pages*format.PageSize)...)
	return nil
}

// Compile-time interface check
var _ Memory = (*Slice)(nil)
