package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/heapkit/heap"
)

// Trace grammar, one operation per line (# starts a comment):
//
//	reset <addr>
//	alloc <size>
//	zalloc <count> <size>
//	realloc <id> <size>
//	free <id>
//
// Every alloc/zalloc/realloc is assigned the next 1-based id; free and
// realloc refer to regions by those ids.

type traceOp struct {
	line int
	verb string
	args []uint64
}

// argCounts maps each verb to its expected argument count.
var argCounts = map[string]int{
	"reset":   1,
	"alloc":   1,
	"zalloc":  2,
	"realloc": 2,
	"free":    1,
}

// parseTrace reads a trace script, validating verbs and argument counts.
func parseTrace(r io.Reader) ([]traceOp, error) {
	var ops []traceOp
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		verb := fields[0]
		want, ok := argCounts[verb]
		if !ok {
			return nil, fmt.Errorf("trace line %d: unknown operation %q", line, verb)
		}
		if len(fields)-1 != want {
			return nil, fmt.Errorf("trace line %d: %s takes %d argument(s), got %d",
				line, verb, want, len(fields)-1)
		}

		op := traceOp{line: line, verb: verb}
		for _, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("trace line %d: bad number %q", line, f)
			}
			op.args = append(op.args, v)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// replayResult summarizes a trace run.
type replayResult struct {
	Ops        int    `json:"ops"`
	Allocs     int    `json:"allocs"`
	Frees      int    `json:"frees"`
	Reclaimed  int    `json:"reclaimed_frees"`
	Exhausted  int    `json:"exhausted"`
	Start      uint32 `json:"start"`
	Cursor     uint32 `json:"cursor"`
	Used       uint32 `json:"used"`
	MemorySize uint32 `json:"memory_size"`
}

// replay runs ops against h. Exhaustion results are counted, not fatal:
// traces are allowed to probe the ceiling. References to unknown or freed
// ids are trace errors and abort the run.
func replay(h *heap.Heap, ops []traceOp) (*replayResult, error) {
	res := &replayResult{Ops: len(ops)}
	regions := map[uint64]heap.Ptr{}
	nextID := uint64(1)

	// record assigns the next id to a successful allocation; exhaustion is
	// counted and the id is not consumed.
	record := func(p heap.Ptr, err error) error {
		switch {
		case err == nil:
			regions[nextID] = p
			printVerbose("  #%d -> %#x\n", nextID, p)
			nextID++
			res.Allocs++
		case errors.Is(err, heap.ErrExhausted), errors.Is(err, heap.ErrGrowRefused):
			printVerbose("  exhausted (%v)\n", err)
			res.Exhausted++
		default:
			return err
		}
		return nil
	}

	for _, op := range ops {
		printVerbose("line %d: %s %v\n", op.line, op.verb, op.args)
		switch op.verb {
		case "reset":
			if op.args[0] > uint64(^uint32(0)) {
				return nil, fmt.Errorf("trace line %d: address out of range", op.line)
			}
			h.Reset(uint32(op.args[0]))
			regions = map[uint64]heap.Ptr{}

		case "alloc":
			p, _, err := h.Alloc(clampSize(op.args[0]))
			if err := record(p, err); err != nil {
				return nil, err
			}

		case "zalloc":
			p, _, err := h.AllocZero(clampSize(op.args[0]), clampSize(op.args[1]))
			if err := record(p, err); err != nil {
				return nil, err
			}

		case "realloc":
			old, ok := regions[op.args[0]]
			if !ok {
				return nil, fmt.Errorf("trace line %d: unknown region #%d", op.line, op.args[0])
			}
			p, _, err := h.Realloc(old, clampSize(op.args[1]))
			if rerr := record(p, err); rerr != nil {
				return nil, rerr
			}
			// On success the old id retires; on exhaustion the original
			// region is still live under its old id.
			if err == nil {
				delete(regions, op.args[0])
			}

		case "free":
			p, ok := regions[op.args[0]]
			if !ok {
				return nil, fmt.Errorf("trace line %d: unknown region #%d", op.line, op.args[0])
			}
			before := h.Cursor()
			h.Free(p)
			delete(regions, op.args[0])
			res.Frees++
			if h.Cursor() != before {
				res.Reclaimed++
			}
		}
	}

	res.Start = h.Start()
	res.Cursor = h.Cursor()
	res.Used = h.Used()
	res.MemorySize = h.Limit()
	return res, nil
}

// clampSize narrows a trace argument to uint32, saturating so oversized
// values exercise the allocator's own exhaustion path instead of wrapping.
func clampSize(v uint64) uint32 {
	if v > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
