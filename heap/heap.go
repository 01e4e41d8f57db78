package heap

import (
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/mem"
	"github.com/joshuapare/heapkit/touch"
)

// maxAddr is the last addressable byte of a 32-bit linear memory.
const maxAddr = 1<<32 - 1

// Heap is a bump-pointer allocator over a span of linear memory.
//
// All state lives in three addresses: start (first managed byte), end (one
// past the last byte currently available without growing, always equal to
// the memory's current size), and next (the cursor - first byte not claimed
// by any region). Regions sit contiguously between start and next.
//
// NOT thread-safe. The sandboxed execution model this serves has a single
// thread of control, so no locking is provided or needed.
type Heap struct {
	mem mem.Memory
	tr  touch.Tracker

	start uint32
	end   uint32
	next  uint32
}

// New creates a heap over m, reset to address 0. tr may be nil to disable
// write tracking. Embedders typically call Reset again with the address the
// guest reserves for its heap.
func New(m mem.Memory, tr touch.Tracker) *Heap {
	h := &Heap{mem: m, tr: tr}
	h.Reset(0)
	return h
}

// Reset re-points the heap at newStart and discards every region at once.
// The cursor rewinds to the (4-byte aligned) start and the end is recomputed
// from the memory's current size. No bytes are touched: pointers handed out
// before the reset must not be dereferenced afterwards.
//
// This is the only way to reclaim space consumed by non-tail frees.
func (h *Heap) Reset(newStart uint32) {
	s := format.Align4U32(newStart)
	h.start = s
	h.next = s
	h.end = h.mem.Size()
}

// Alloc claims size bytes and returns the payload address and a slice over
// it. size 0 is a valid zero-length allocation and still consumes a header.
//
// On failure (ErrExhausted, ErrGrowRefused) no state changes and the heap
// remains usable for smaller requests. The returned slice points into linear
// memory and is invalidated by any later growth.
func (h *Heap) Alloc(size uint32) (Ptr, []byte, error) {
	end := regionEnd(uint64(h.next), uint64(size))
	if err := h.ensure(end); err != nil {
		return 0, nil, err
	}

	off := h.next
	data := h.mem.Bytes()
	format.PutU32(data, int(off), size)
	h.next = uint32(end)

	if h.tr != nil {
		h.tr.Add(int(off), format.HeaderSize)
	}

	p := off + format.HeaderSize
	return p, data[p : p+size : p+size], nil
}

// Free releases the region at p. Free(0) is a no-op.
//
// Only the tail region (the most recent still-live allocation) is actually
// reclaimed, by rewinding the cursor over it. Freeing any earlier region
// retains its space until Reset; that trade is what buys the allocator its
// freedom from free lists.
//
// Double frees and pointers not obtained from this heap are programming
// errors with undefined results; they are not detected.
func (h *Heap) Free(p Ptr) {
	if p == 0 {
		return
	}

	off := regionFor(p)
	size := format.ReadU32(h.mem.Bytes(), int(off))

	// Tail region: reuse its space for the next allocation.
	if regionEnd(uint64(off), uint64(size)) == uint64(h.next) {
		h.next = off
	}
}

// AllocZero claims count*size bytes and zero-fills them. A product that
// overflows the 32-bit address space fails as exhaustion rather than
// wrapping into an undersized region.
//
// The zero fill is unconditional: a reclaimed tail slot may still hold the
// previous occupant's bytes, since Free only rewinds the cursor.
func (h *Heap) AllocZero(count, size uint32) (Ptr, []byte, error) {
	total := uint64(count) * uint64(size)
	if total > maxAddr {
		return 0, nil, ErrExhausted
	}

	p, payload, err := h.Alloc(uint32(total))
	if err != nil {
		return 0, nil, err
	}

	clear(payload)
	if h.tr != nil && len(payload) > 0 {
		h.tr.Add(int(p), len(payload))
	}

	return p, payload, nil
}

// Realloc resizes the region at p to newSize. Realloc(0, n) is Alloc(n).
//
// The tail region grows or shrinks in place without copying: its capacity is
// verified before the cursor moves, so a refused growth leaves the original
// region live and untouched. Any other region gets a fresh allocation at the
// tail with the overlapping prefix copied over; the old region's space is
// retained until Reset.
func (h *Heap) Realloc(p Ptr, newSize uint32) (Ptr, []byte, error) {
	if p == 0 {
		return h.Alloc(newSize)
	}

	off := regionFor(p)
	oldSize := format.ReadU32(h.mem.Bytes(), int(off))

	if regionEnd(uint64(off), uint64(oldSize)) == uint64(h.next) {
		// Tail region: rewrite the header in place. The payload prefix is
		// left alone, so no copy is needed in either direction.
		end := regionEnd(uint64(off), uint64(newSize))
		if err := h.ensure(end); err != nil {
			return 0, nil, err
		}

		data := h.mem.Bytes()
		format.PutU32(data, int(off), newSize)
		h.next = uint32(end)

		if h.tr != nil {
			h.tr.Add(int(off), format.HeaderSize)
		}

		return p, data[p : p+newSize : p+newSize], nil
	}

	np, payload, err := h.Alloc(newSize)
	if err != nil {
		return 0, nil, err
	}

	// Bytes() must be re-fetched: the Alloc above may have grown (and on a
	// Slice memory, relocated) the backing store. Offsets are unchanged.
	n := copy(payload, h.mem.Bytes()[p:p+oldSize])
	if h.tr != nil && n > 0 {
		h.tr.Add(int(np), n)
	}

	return np, payload, nil
}

// ensure makes [h.start, end) addressable, growing linear memory by the
// page-rounded shortfall if needed. Fails with no state change when end
// falls outside the footprint ceiling (ErrExhausted) or the host refuses
// the growth (ErrGrowRefused).
func (h *Heap) ensure(end uint64) error {
	if end <= uint64(h.end) {
		return nil
	}
	if end > maxAddr || end-uint64(h.start) > format.MaxHeapSize {
		return ErrExhausted
	}

	shortfall := end - uint64(h.end)
	if err := h.mem.Grow(format.PagesFor(shortfall)); err != nil {
		return ErrGrowRefused
	}
	h.end = h.mem.Size()

	return nil
}

// SizeOf returns the declared (unpadded) payload size of the region at p.
// p must be a live payload address from this heap.
func (h *Heap) SizeOf(p Ptr) uint32 {
	return format.ReadU32(h.mem.Bytes(), int(regionFor(p)))
}

// Start returns the first byte managed by the heap.
func (h *Heap) Start() uint32 { return h.start }

// Cursor returns the first byte not yet claimed by any region.
func (h *Heap) Cursor() uint32 { return h.next }

// Limit returns one past the last byte available without growing.
func (h *Heap) Limit() uint32 { return h.end }

// Used returns the footprint consumed so far, including retained regions.
func (h *Heap) Used() uint32 { return h.next - h.start }
