package heap

import "github.com/joshuapare/heapkit/internal/format"

// Region arithmetic. A region is a 4-byte size header followed by the
// payload; its footprint ends at the payload end rounded up to the next
// 4-byte boundary. All end computations go through regionEnd so the rounding
// rule exists exactly once.

// Ptr is a payload address in linear memory. 0 is the null value; no
// successful allocation ever returns it.
type Ptr = uint32

// regionFor returns the header offset for a payload address.
func regionFor(p Ptr) uint32 {
	return p - format.HeaderSize
}

// regionEnd returns one past the last footprint byte of a region starting at
// header offset off with the given payload size. Computed in uint64 so
// pathological sizes compare as too large instead of wrapping.
func regionEnd(off, size uint64) uint64 {
	return format.Align4U64(off + format.HeaderSize + size)
}
