package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/mem"
)

func init() {
	rootCmd.AddCommand(newSimulateCmd())
}

func newSimulateCmd() *cobra.Command {
	var pages, maxPages uint32
	cmd := &cobra.Command{
		Use:   "simulate <trace>",
		Short: "Replay an allocation trace against a fresh heap",
		Long: `Replays a line-oriented allocation trace against a fresh heap over a
slice-backed linear memory and reports the resulting layout.

Trace operations (ids are assigned to successful allocations, 1-based):
  reset <addr>            re-point the heap
  alloc <size>            allocate
  zalloc <count> <size>   zeroed allocation
  realloc <id> <size>     resize region <id>
  free <id>               free region <id>

Example:
  heapctl simulate trace.txt --max-pages 4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(args[0], pages, maxPages)
		},
	}
	cmd.Flags().Uint32Var(&pages, "pages", 1, "initial linear memory size in pages")
	cmd.Flags().Uint32Var(&maxPages, "max-pages", 64, "maximum linear memory size in pages")
	return cmd
}

func runSimulate(path string, pages, maxPages uint32) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open trace: %w", err)
	}
	defer f.Close()

	ops, err := parseTrace(f)
	if err != nil {
		return err
	}
	printVerbose("Parsed %d operation(s) from %s\n", len(ops), path)

	m, err := mem.NewSlice(pages, maxPages)
	if err != nil {
		return err
	}
	h := heap.New(m, nil)

	res, err := replay(h, ops)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("Replayed %d operation(s):\n", res.Ops)
	printInfo("  Allocations:     %d (%d exhausted)\n", res.Allocs, res.Exhausted)
	printInfo("  Frees:           %d (%d reclaimed at the tail)\n", res.Frees, res.Reclaimed)
	printInfo("  Heap start:      %#x\n", res.Start)
	printInfo("  Cursor:          %#x\n", res.Cursor)
	printInfo("  Footprint used:  %d bytes\n", res.Used)
	printInfo("  Linear memory:   %d bytes\n", res.MemorySize)
	return nil
}
