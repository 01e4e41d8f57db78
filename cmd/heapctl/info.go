package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

type heapInfo struct {
	PageSize    int `json:"page_size"`
	MaxHeapSize int `json:"max_heap_size"`
	HeaderSize  int `json:"header_size"`
	Alignment   int `json:"alignment"`
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the compiled-in heap parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

func runInfo() error {
	info := heapInfo{
		PageSize:    heap.PageSize,
		MaxHeapSize: heap.MaxHeapSize,
		HeaderSize:  heap.HeaderSize,
		Alignment:   heap.Alignment,
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("Heap parameters:\n")
	printInfo("  Page size:     %d bytes\n", info.PageSize)
	printInfo("  Max heap size: %d bytes\n", info.MaxHeapSize)
	printInfo("  Header size:   %d bytes\n", info.HeaderSize)
	printInfo("  Alignment:     %d bytes\n", info.Alignment)
	return nil
}
