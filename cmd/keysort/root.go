package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/keysort/internal/logger"
	"github.com/joshuapare/keysort/pkg/keysort"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logDir  string

	// Sort flags
	outputPath string
	maxMemory  string
	showStats  bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keysort [file]",
		Short: "Stably sort key/value records by 16-bit key",
		Long: `keysort reads whitespace-separated "<key> <value>" pairs, where key is an
unsigned 16-bit integer and value an unsigned 64-bit integer, and writes them
as "<key>\t<value>" lines in ascending key order. Records with equal keys keep
their input order.

Input is read from file, or from stdin when file is omitted or "-". Reading
stops quietly at the first token that is not a valid key or value; everything
read before it is still sorted and written.

Example:
  keysort < records.txt
  keysort records.txt -o sorted.txt
  keysort records.txt --max-memory 64MiB --stats`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors and records")
	cmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print statistics as JSON (implies --stats)")
	cmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to a dated file in this directory")

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write records to this file instead of stdout")
	cmd.Flags().StringVar(&maxMemory, "max-memory", "", "Cap memory for sort arrays (e.g. 512MiB, 2GB)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print run statistics to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	if err := initLogging(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logger.Close()

	limit, err := parseMemory(maxMemory)
	if err != nil {
		return err
	}
	opts := &keysort.Options{MaxMemory: limit, Logger: logger.L}

	out, err := openOutput(cmd.OutOrStdout(), outputPath)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	var stats *keysort.Stats
	if len(args) == 0 || args[0] == "-" {
		printVerbose(cmd, "Reading records from stdin\n")
		stats, err = keysort.SortStream(cmd.InOrStdin(), out, opts)
	} else {
		printVerbose(cmd, "Reading records from %s\n", args[0])
		stats, err = keysort.SortFile(args[0], out, opts)
	}
	if err != nil {
		out.Abort()
		return err
	}
	if err := out.Commit(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if stats.Truncated {
		printVerbose(cmd, "Input stopped at malformed token %q after %d records\n", stats.StopToken, stats.Records)
	}

	switch {
	case quiet:
		return nil
	case jsonOut:
		return printJSON(cmd.ErrOrStderr(), stats)
	case showStats:
		printStats(cmd.ErrOrStderr(), stats, limit)
	}
	return nil
}

func initLogging(stderr io.Writer) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Init(logger.Options{
		Enabled: verbose || logDir != "",
		Output:  stderr,
		LogDir:  logDir,
		Level:   level,
	})
}

// parseMemory parses a human-readable byte size; empty means unlimited.
func parseMemory(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --max-memory %q: %w", s, err)
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("invalid --max-memory %q: too large", s)
	}
	return int64(n), nil
}

// Helper functions for output

// printVerbose prints a verbose message to stderr if verbose mode is enabled
func printVerbose(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
