package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/arenakit/cmd/arenactl/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logDir   string
	logLevel string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Drive text workloads through a region arena",
	Long: `arenactl reads files into a region-based bump arena, slices them without
copying, and reports how the arena's region chain grew and was reused across
the batch. One arena serves the whole batch and is reset between files.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write JSON logs to this directory (disabled when empty)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Minimum log level: debug, info, warn, error")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = closeLogging()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func initLogging() error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	closer, err := logger.Init(logger.Options{
		Enabled: logDir != "",
		LogDir:  logDir,
		Level:   level,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer
	return nil
}

func closeLogging() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
