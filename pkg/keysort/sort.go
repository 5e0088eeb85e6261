package keysort

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/joshuapare/keysort/countsort"
	"github.com/joshuapare/keysort/internal/mmfile"
	"github.com/joshuapare/keysort/internal/recio"
	"github.com/joshuapare/keysort/vec"
)

// SortStream reads every record from r, sorts them by key and writes them to
// w. Nothing is written unless reading and sorting succeed.
func SortStream(r io.Reader, w io.Writer, opts *Options) (*Stats, error) {
	start := time.Now()
	log := opts.logger()
	budget := vec.NewBudget(opts.maxMemory())

	s, err := countsort.NewSorter(vec.WithBudget(budget))
	if err != nil {
		return nil, fmt.Errorf("keysort: %w", err)
	}
	defer s.Release()

	rd := recio.NewReader(r)
	for {
		rec, ok := rd.Next()
		if !ok {
			break
		}
		if err := s.Add(rec); err != nil {
			return nil, fmt.Errorf("keysort: %w", err)
		}
	}
	if err := rd.Err(); err != nil {
		return nil, fmt.Errorf("keysort: read input: %w", err)
	}

	h := s.Histogram()
	stats := &Stats{
		Records:      h.Records,
		DistinctKeys: h.DistinctKeys,
		MinKey:       h.MinKey,
		MaxKey:       h.MaxKey,
		TopKey:       h.TopKey,
		TopKeyCount:  h.TopCount,
	}
	if tok, n, ok := rd.Malformed(); ok {
		stats.Truncated = true
		stats.StopToken = tok
		log.Debug("input stopped at malformed token", "token", tok, "records", n)
	}
	log.Debug("input read", "records", s.Len(), "stop", rd.Stop().String(), "bytes_in_use", budget.InUse())

	sorted, err := s.Sort()
	if err != nil {
		return nil, fmt.Errorf("keysort: %w", err)
	}
	defer sorted.Release()

	wr := recio.NewWriter(w)
	if err := wr.WriteAll(sorted); err != nil {
		return nil, fmt.Errorf("keysort: write output: %w", err)
	}
	if err := wr.Flush(); err != nil {
		return nil, fmt.Errorf("keysort: write output: %w", err)
	}

	stats.PeakBytes = budget.Peak()
	stats.Duration = time.Since(start)
	log.Info("sorted", "records", wr.Written(), "peak_bytes", stats.PeakBytes, "duration", stats.Duration)
	return stats, nil
}

// SortFile is SortStream over the contents of the file at path, which is
// memory-mapped for the duration of the call.
func SortFile(path string, w io.Writer, opts *Options) (*Stats, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("keysort: open input: %w", err)
	}
	defer cleanup()

	opts.logger().Debug("input mapped", "path", path, "bytes", len(data))
	return SortStream(bytes.NewReader(data), w, opts)
}
