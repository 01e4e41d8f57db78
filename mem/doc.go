// Package mem models the linear memory a sandboxed host presents to guest
// code: a single contiguous byte region that grows in whole 64 KiB pages and
// whose growth the host may refuse.
//
// The Memory interface is the narrow seam between the allocator in package
// heap and the host. Two implementations are provided:
//
//   - Slice: a growable byte slice with a page cap. Growth may relocate the
//     backing array (contents are preserved). Cheap and portable; the default
//     for tests and tools.
//   - Mmap: an anonymous mapping reserved at the maximum size up front, so the
//     base address stays stable across growth - the property real WASM hosts
//     give their guests. Unix only; other platforms fall back to a
//     pre-reserved slice with the same stable-base behavior.
//
// Both refuse growth past their configured maximum, which is how a host
// ceiling is simulated without a real sandbox.
package mem
