package format

// Alignment utilities for heap address arithmetic. Every rounding decision in
// the allocator goes through one of these so the rounding rule lives in
// exactly one place.

// Align4 returns n aligned up to the next 4-byte boundary.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// Align4U32 returns n aligned up to the next 4-byte boundary.
// uint32 version for linear-memory addresses. Callers must guard against
// values within AlignmentMask of the uint32 ceiling; address computations in
// the allocator are done in uint64 before narrowing.
func Align4U32(n uint32) uint32 {
	return (n + AlignmentMask) &^ AlignmentMask
}

// Align4U64 returns n aligned up to the next 4-byte boundary.
// uint64 version used for overflow-safe footprint computation.
func Align4U64(n uint64) uint64 {
	return (n + AlignmentMask) &^ AlignmentMask
}

// PagesFor returns the number of whole pages needed to cover n bytes.
//
// Example:
//
//	PagesFor(1)       = 1
//	PagesFor(65536)   = 1
//	PagesFor(65537)   = 2
func PagesFor(n uint64) uint32 {
	if n == 0 {
		return 0
	}
	return uint32((n-1)/PageSize) + 1
}
