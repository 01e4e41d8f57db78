package touch

import "sort"

const (
	// defaultRangeCapacity is the pre-allocated capacity for recorded ranges.
	// This reduces allocations during typical workloads.
	defaultRangeCapacity = 64

	// defaultGranularity is the span alignment used when coalescing (4KB,
	// the usual host snapshot unit).
	defaultGranularity = 4096
)

// Range represents a written byte range (absolute linear-memory offsets).
type Range struct {
	Off int64 // Offset from the start of linear memory
	Len int64 // Length in bytes
}

// Recorder accumulates written ranges and coalesces them on demand.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Recorder struct {
	ranges      []Range
	granularity int64
}

// NewRecorder creates a Recorder that coalesces to 4KB-aligned spans.
func NewRecorder() *Recorder {
	return &Recorder{
		ranges:      make([]Range, 0, defaultRangeCapacity),
		granularity: defaultGranularity,
	}
}

// Add records a written range. Very cheap: appends to a slice, no merging
// happens until Ranges is called.
func (r *Recorder) Add(off, length int) {
	r.ranges = append(r.ranges, Range{
		Off: int64(off),
		Len: int64(length),
	})
}

// Len returns the number of raw (uncoalesced) ranges recorded so far.
func (r *Recorder) Len() int { return len(r.ranges) }

// Reset discards all recorded ranges, keeping the backing capacity.
func (r *Recorder) Reset() { r.ranges = r.ranges[:0] }

// Ranges returns the recorded ranges coalesced into granularity-aligned,
// non-overlapping spans sorted by offset. The recorder itself is unchanged.
func (r *Recorder) Ranges() []Range {
	if len(r.ranges) == 0 {
		return nil
	}

	// Align all ranges out to span boundaries
	aligned := make([]Range, len(r.ranges))
	for i, rg := range r.ranges {
		start := (rg.Off / r.granularity) * r.granularity
		end := rg.Off + rg.Len
		if end%r.granularity != 0 {
			end = ((end / r.granularity) + 1) * r.granularity
		}
		aligned[i] = Range{Off: start, Len: end - start}
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	// Merge overlapping/adjacent spans
	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.Off+current.Len {
			end := current.Off + current.Len
			if nextEnd := next.Off + next.Len; nextEnd > end {
				end = nextEnd
			}
			current.Len = end - current.Off
		} else {
			merged = append(merged, current)
			current = next
		}
	}
	merged = append(merged, current)

	return merged
}

// Compile-time interface check
var _ Tracker = (*Recorder)(nil)
