package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/arenakit/arena"
	"github.com/joshuapare/arenakit/cmd/arenactl/logger"
	"github.com/joshuapare/arenakit/strview"
	"github.com/spf13/cobra"
)

var (
	scanRegionWords int
	scanDelim       string
	scanEncoding    string
)

func init() {
	cmd := newScanCmd()
	cmd.Flags().
		IntVar(&scanRegionWords, "region-words", arena.DefaultCapacity, "Capacity of newly grown regions, in words")
	cmd.Flags().StringVar(&scanDelim, "delim", "\n", "Single-byte record delimiter")
	cmd.Flags().
		StringVar(&scanEncoding, "encoding", "utf8", "Input encoding: utf8, latin1, windows1252")
	rootCmd.AddCommand(cmd)
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "Tokenize files through one reusable arena",
		Long: `The scan command reads each file into arena memory, splits it into
records and whitespace-separated words without copying, and counts words,
distinct words and numeric fields. The arena is reset between files, so
later files reuse the regions grown for earlier ones.

Example:
  arenactl scan access.log error.log
  arenactl scan --region-words 1024 --json data/*.txt
  arenactl scan --encoding windows1252 legacy.csv --delim ,`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args)
		},
	}
	return cmd
}

// FileReport summarizes one scanned file.
type FileReport struct {
	Path          string      `json:"path"`
	Bytes         int         `json:"bytes"`
	Records       int         `json:"records"`
	Words         int         `json:"words"`
	DistinctWords int         `json:"distinct_words"`
	Numbers       int         `json:"numbers"`
	NumberSum     uint64      `json:"number_sum"`
	LongestWord   string      `json:"longest_word"`
	MeanWordLen   float64     `json:"mean_word_len"`
	Arena         arena.Stats `json:"arena"`
}

// ScanReport summarizes a whole batch.
type ScanReport struct {
	Backend           string       `json:"backend"`
	RegionWords       int          `json:"region_words"`
	Files             []FileReport `json:"files"`
	Acquisitions      int          `json:"acquisitions"`
	Releases          int          `json:"releases"`
	BytesAcquired     int64        `json:"bytes_acquired"`
	PeakRegions       int          `json:"peak_regions"`
	PeakCapacityBytes int          `json:"peak_capacity_bytes"`
}

func runScan(args []string) (err error) {
	if len(scanDelim) != 1 {
		return fmt.Errorf("--delim must be exactly one byte, got %q", scanDelim)
	}
	enc, err := encodingFor(scanEncoding)
	if err != nil {
		return err
	}

	backend := &arena.Counting{Backend: arena.DefaultBackend()}
	a := arena.New(
		arena.WithBackend(backend),
		arena.WithRegionCapacity(scanRegionWords),
		arena.WithLogger(logger.L),
	)
	report := ScanReport{
		Backend:     fmt.Sprint(backend.Backend),
		RegionWords: a.RegionCapacity(),
	}

	defer func() {
		// Only reached with regions still held when a file failed.
		if a.Empty() {
			return
		}
		if freeErr := a.Free(); freeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to release arena: %w", freeErr))
		}
	}()

	for _, path := range args {
		printVerbose("Scanning: %s\n", path)
		fr, scanErr := scanFile(a, path, scanDelim[0], enc)
		if scanErr != nil {
			logger.Error("scan failed", "path", path, "error", scanErr)
			return fmt.Errorf("failed to scan %s: %w", path, scanErr)
		}
		report.Files = append(report.Files, fr)
		report.PeakRegions = max(report.PeakRegions, fr.Arena.Regions)
		report.PeakCapacityBytes = max(report.PeakCapacityBytes, fr.Arena.CapacityBytes)
		logger.Info("file scanned",
			"path", path,
			"words", fr.Words,
			"regions", fr.Arena.Regions,
			"used_bytes", fr.Arena.UsedBytes,
		)

		// Everything carved for this file is dead from here on.
		a.Reset()
	}

	if err := a.Free(); err != nil {
		return fmt.Errorf("failed to release arena: %w", err)
	}
	logger.Debug("arena freed", "outstanding", backend.Outstanding())

	report.Acquisitions = backend.Acquired
	report.Releases = backend.Released
	report.BytesAcquired = backend.BytesAcquired

	if jsonOut {
		return printJSON(report)
	}
	printScanReport(report)
	return nil
}

// scanFile loads path into a and tokenizes it. Nothing returned may point
// into arena memory; the caller resets the arena right after.
func scanFile(a *arena.Arena, path string, delim byte, enc encoding.Encoding) (FileReport, error) {
	fr := FileReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return fr, err
	}
	defer f.Close()

	data, err := loadFile(a, f)
	if err != nil {
		return fr, err
	}
	fr.Bytes = len(data)

	text := strview.FromBytes(data)
	if enc != nil {
		decoded, err := text.Decode(enc)
		if err != nil {
			return fr, fmt.Errorf("decode %s: %w", scanEncoding, err)
		}
		text = strview.FromString(arena.CloneString(a, decoded))
	}

	seen := make(map[string]struct{})
	lengths := arena.MakeSlice[uint32](a, 0, 64)
	var longest strview.View
	var totalLen int

	for record := range text.Split(delim) {
		fr.Records++
		rest := record.Trim()
		for !rest.Empty() {
			word := rest.ChopLeftWhile(notSpace)
			rest = rest.TrimLeft()

			fr.Words++
			totalLen += word.Len()
			lengths = arena.Append(a, lengths, uint32(word.Len()))
			if word.Len() > longest.Len() {
				longest = word
			}
			if word.TakeLeftWhile(strview.IsDigit).Len() == word.Len() {
				fr.Numbers++
				fr.NumberSum += word.ParseU64()
			}
			if _, ok := seen[string(word.Bytes())]; !ok {
				seen[arena.CloneString(a, string(word.Bytes()))] = struct{}{}
			}
		}
	}

	fr.DistinctWords = len(seen)
	fr.LongestWord = longest.String()
	if fr.Words > 0 {
		fr.MeanWordLen = float64(totalLen) / float64(fr.Words)
	}
	fr.Arena = a.Stats()
	logger.Debug("word lengths recorded", "path", path, "count", len(lengths))
	return fr, nil
}

// loadFile reads f into arena memory. Regular files are read straight into a
// block sized from Stat; pipes and other streams report no useful size, so
// they are read to the end first and then copied in.
func loadFile(a *arena.Arena, f *os.File) ([]byte, error) {
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() {
		raw, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
		return arena.CloneBytes(a, raw), nil
	}
	if st.Size() > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("file too large (%d bytes)", st.Size())
	}

	data, err := a.TryAlloc(int(st.Size()))
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return data, nil
}

func notSpace(c byte) bool { return !strview.IsSpace(c) }

func encodingFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (want utf8, latin1 or windows1252)", name)
	}
}

func printScanReport(r ScanReport) {
	for _, f := range r.Files {
		printInfo("%s: %d records, %d words (%d distinct), %d numbers (sum %d)\n",
			f.Path, f.Records, f.Words, f.DistinctWords, f.Numbers, f.NumberSum)
		if f.LongestWord != "" {
			printVerbose("  longest word: %q, mean length %.2f\n", f.LongestWord, f.MeanWordLen)
		}
		printVerbose("  arena: %d regions, %s used of %s (%.1f%%)\n",
			f.Arena.Regions, formatBytes(f.Arena.UsedBytes), formatBytes(f.Arena.CapacityBytes),
			f.Arena.Utilization*100)
	}
	printInfo("\nArena (%s backend, %d-word regions):\n", r.Backend, r.RegionWords)
	printInfo("  Files: %d\n", len(r.Files))
	printInfo("  Region acquisitions: %d (%s)\n", r.Acquisitions, formatBytes(int(r.BytesAcquired)))
	printInfo("  Peak regions: %d (%s)\n", r.PeakRegions, formatBytes(r.PeakCapacityBytes))
}
