// Package format houses the low-level layout constants and word codecs for a
// guest heap living inside a sandboxed linear memory. The goal is to keep the
// address arithmetic and byte encoding in one focused place so higher-level
// packages can orchestrate allocation without re-deriving offsets.
package format

const (
	// PageSize is the unit the host grows linear memory in. WASM-style hosts
	// present memory in 64 KiB pages.
	PageSize = 0x10000

	// MaxHeapSize is the hard ceiling on the heap footprint, measured from the
	// heap start. Growth that would push the heap past this always fails,
	// regardless of what the host would allow.
	MaxHeapSize = 4 * 1024 * 1024

	// HeaderSize is the number of bytes used by the region header preceding
	// every payload handed out by the allocator. It holds the requested
	// (unpadded) payload size as a little-endian uint32.
	HeaderSize = 4

	// Alignment is the required alignment of every payload address. The
	// header is itself Alignment bytes, so an aligned header yields an
	// aligned payload.
	Alignment = 4

	// AlignmentMask is Alignment - 1, for mask-based rounding.
	AlignmentMask = Alignment - 1

	// PageMask is PageSize - 1, for mask-based rounding.
	PageMask = PageSize - 1
)
