package mem

import "errors"

// ErrRefused indicates the host declined a growth request, typically because
// it would exceed the memory's configured maximum page count.
var ErrRefused = errors.New("mem: growth refused")

// Memory is the allocator's view of a sandboxed linear memory.
//
// Size is always a whole number of pages. Grow requests whole pages and may
// be refused; a refused Grow leaves the memory unchanged. Bytes returns the
// full backing store and is only valid until the next successful Grow
// (implementations may relocate the backing array; contents are preserved).
type Memory interface {
	// Bytes returns the current backing store, len(Bytes()) == Size().
	Bytes() []byte

	// Size returns the current size in bytes, a multiple of format.PageSize.
	Size() uint32

	// Grow extends the memory by the given number of whole pages.
	// Returns ErrRefused (or an implementation error) without changing
	// state if the request cannot be honored.
	Grow(pages uint32) error
}
