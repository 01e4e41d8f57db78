package touch

// Tracker is the minimal interface for observing writes to linear memory.
//
// It is intended for components that only need to report ranges they wrote
// (the allocator) while something else decides what to do with them
// (snapshotting, diffing, copy-on-write bookkeeping).
type Tracker interface {
	// Add marks a byte range as written.
	// off is the offset from the start of linear memory, length the number
	// of bytes.
	Add(off, length int)
}
