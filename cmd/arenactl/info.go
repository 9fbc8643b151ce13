package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/arenakit/arena"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the arena configuration compiled into this binary",
		Long: `The info command reports the default backend selected at build time
(heap, or virtual / malloc when built with -tags arena_vmem / arena_malloc),
the allocation word size, and the default region capacity.

Example:
  arenactl info
  arenactl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// BuildInfo describes the compiled-in arena configuration.
type BuildInfo struct {
	Backend              string `json:"backend"`
	WordSize             int    `json:"word_size"`
	DefaultCapacityWords int    `json:"default_capacity_words"`
	DefaultCapacityBytes int    `json:"default_capacity_bytes"`
	PageSize             int    `json:"page_size"`
}

func runInfo(args []string) error {
	info := BuildInfo{
		Backend:              fmt.Sprint(arena.DefaultBackend()),
		WordSize:             arena.WordSize,
		DefaultCapacityWords: arena.DefaultCapacity,
		DefaultCapacityBytes: arena.DefaultCapacity * arena.WordSize,
		PageSize:             os.Getpagesize(),
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("Arena configuration:\n")
	printInfo("  Backend: %s\n", info.Backend)
	printInfo("  Word size: %d bytes\n", info.WordSize)
	printInfo("  Default region: %d words (%s)\n", info.DefaultCapacityWords, formatBytes(info.DefaultCapacityBytes))
	printInfo("  Page size: %d bytes\n", info.PageSize)
	return nil
}

func formatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
