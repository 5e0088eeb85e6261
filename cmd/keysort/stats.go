package main

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/keysort/pkg/keysort"
)

// printStats writes a human-readable run summary. Counts are grouped with
// thousands separators.
func printStats(w io.Writer, stats *keysort.Stats, limit int64) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "\nSort Statistics\n")
	p.Fprintf(w, "%s\n", strings.Repeat("=", 40))

	p.Fprintf(w, "  Records: %d\n", stats.Records)
	p.Fprintf(w, "  Distinct Keys: %d\n", stats.DistinctKeys)
	if stats.Records > 0 {
		p.Fprintf(w, "  Key Range: %d - %d\n", stats.MinKey, stats.MaxKey)
		p.Fprintf(w, "  Most Frequent Key: %d (%d records)\n", stats.TopKey, stats.TopKeyCount)
	}

	budget := "unlimited"
	if limit > 0 {
		budget = humanize.IBytes(uint64(limit))
	}
	p.Fprintf(w, "  Peak Memory: %s (limit: %s)\n", humanize.IBytes(uint64(stats.PeakBytes)), budget)
	p.Fprintf(w, "  Duration: %s\n", stats.Duration)

	if stats.Truncated {
		p.Fprintf(w, "  Input: stopped at malformed token %q\n", stats.StopToken)
	} else {
		p.Fprintf(w, "  Input: complete\n")
	}
}
