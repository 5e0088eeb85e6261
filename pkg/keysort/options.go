package keysort

import (
	"log/slog"
	"time"
)

// Options controls a sort run. A nil *Options is valid and means defaults.
type Options struct {
	// MaxMemory caps the bytes held by the run's arrays (input, count table
	// and output). Zero means unlimited.
	MaxMemory int64

	// Logger receives progress at debug level and a summary at info level.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

func (o *Options) maxMemory() int64 {
	if o == nil {
		return 0
	}
	return o.MaxMemory
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Stats describes a completed run.
type Stats struct {
	Records      int           `json:"records"`
	DistinctKeys int           `json:"distinct_keys"`
	MinKey       uint16        `json:"min_key"`
	MaxKey       uint16        `json:"max_key"`
	TopKey       uint16        `json:"top_key"`
	TopKeyCount  int           `json:"top_key_count"`
	PeakBytes    int64         `json:"peak_bytes"`
	Truncated    bool          `json:"truncated"`
	StopToken    string        `json:"stop_token,omitempty"`
	Duration     time.Duration `json:"duration_ns"`
}
