package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/joshuapare/arenakit/arena"
	"github.com/spf13/cobra"
)

// Set by the linker: -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(args)
		},
	}
}

// VersionInfo identifies the binary and the arena library it was built with.
type VersionInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	Date           string `json:"date"`
	GoVersion      string `json:"go_version"`
	ArenaVersion   string `json:"arena_version"`
	DefaultBackend string `json:"default_backend"`
}

func buildVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:        version,
		Commit:         commit,
		Date:           date,
		GoVersion:      runtime.Version(),
		ArenaVersion:   "(devel)",
		DefaultBackend: fmt.Sprint(arena.DefaultBackend()),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, dep := range bi.Deps {
		if dep.Path == "github.com/joshuapare/arenakit" {
			info.ArenaVersion = dep.Version
			if dep.Replace != nil {
				info.ArenaVersion = "(replaced by " + dep.Replace.Path + ")"
			}
		}
	}
	return info
}

func runVersion(args []string) error {
	info := buildVersionInfo()
	if jsonOut {
		return printJSON(info)
	}
	printInfo("arenactl %s\n", info.Version)
	printInfo("  commit: %s\n", info.Commit)
	printInfo("  built: %s (%s)\n", info.Date, info.GoVersion)
	printVerbose("  arenakit: %s\n", info.ArenaVersion)
	printVerbose("  default backend: %s\n", info.DefaultBackend)
	return nil
}
