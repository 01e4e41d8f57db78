package heap

import "errors"

var (
	// ErrExhausted indicates the request would push the heap footprint past
	// the compiled-in ceiling, or the size arithmetic itself overflows the
	// 32-bit address space.
	ErrExhausted = errors.New("heap: request exceeds heap capacity")

	// ErrGrowRefused indicates the host declined to grow linear memory.
	// Distinct from ErrExhausted so embedders can tell the two ceilings
	// apart, but callers handle both the same way: the allocator state is
	// unchanged and a smaller request may still succeed.
	ErrGrowRefused = errors.New("heap: host refused linear memory growth")
)
