// Package heap implements a minimal bump-pointer allocator for guest code
// running against a sandboxed linear memory.
//
// # Overview
//
// The allocator owns one contiguous span of a linear memory and tracks a
// single cursor: the first byte not yet claimed by any region. Allocation
// advances the cursor; there are no free lists and no coalescing. The one
// reclamation trick is the tail region: freeing the most recently allocated
// region rewinds the cursor over it, so tight alloc/free pairs cost nothing.
// Freeing anything else retains its space until the next Reset.
//
// # Region Layout
//
// Every payload is preceded by a 4-byte header holding the requested
// (unpadded) payload size:
//
//	[size u32][payload ...][pad to 4]  [size u32][payload ...][pad to 4]  ...
//	^heap start                                                          ^cursor
//
// Payload addresses are always 4-byte aligned. Regions are contiguous in
// increasing address order; a region's padded end is exactly the next
// region's header.
//
// # Growth
//
// When the cursor would pass the end of linear memory, the heap asks the
// host for whole pages via the injected mem.Memory. Two ceilings apply: the
// compiled-in format.MaxHeapSize footprint cap, and whatever cap the Memory
// itself enforces. Either failure is reported as an error with no state
// change - the allocator stays usable and a smaller request may still
// succeed.
//
// # Contract
//
// The allocator is strictly single-threaded and does no misuse detection.
// Double frees, foreign pointers, and use after Reset are programming errors
// with undefined results, exactly like the libc it stands in for. Free(0) is
// a no-op. Payload slices returned by Alloc point into the linear memory and
// are invalidated by any later growth; re-derive them from Memory.Bytes()
// when holding across allocations.
//
// # Usage Example
//
//	m, _ := mem.NewSlice(1, 64)
//	h := heap.New(m, nil)
//	h.Reset(0)
//
//	ptr, buf, err := h.Alloc(24)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Tail free: the 24 bytes are reclaimed for the next Alloc.
//	h.Free(ptr)
package heap
