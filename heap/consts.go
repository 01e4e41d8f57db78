package heap

import "github.com/joshuapare/heapkit/internal/format"

// Public mirrors of the layout constants guests and embedders build against.
const (
	// PageSize is the unit the host grows linear memory in.
	PageSize = format.PageSize

	// MaxHeapSize is the hard ceiling on the heap footprint, measured from
	// the heap start.
	MaxHeapSize = format.MaxHeapSize

	// HeaderSize is the size of the region header preceding every payload.
	HeaderSize = format.HeaderSize

	// Alignment is the guaranteed alignment of every payload address.
	Alignment = format.Alignment
)
