// Package touch tracks byte ranges of linear memory written by the
// allocator (region headers, zero fills, realloc copies).
//
// Embedders that snapshot or diff guest memory between invocations need to
// know what changed underneath the guest's own writes. The allocator accepts
// an optional Tracker and reports every write through it; Recorder is the
// stock implementation, accumulating ranges cheaply and coalescing them into
// aligned, non-overlapping spans on demand.
package touch
