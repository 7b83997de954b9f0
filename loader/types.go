// Package loader defines options, skip reasons and sentinel errors for
// reading city graphs from line-oriented text.
package loader

import (
	"errors"
	"io"
	"sort"

	"github.com/katalvlaran/citygraph/metrics"
	"go.arcalot.io/log/v2"
)

// ErrNotFound is returned (wrapped) by LoadFile when the input does not
// exist. Callers must treat it as "no graph available".
var ErrNotFound = errors.New("loader: input file not found")

// ErrRead is returned (wrapped) when the input cannot be read.
var ErrRead = errors.New("loader: read failed")

// SkipReason classifies a dropped record.
type SkipReason string

const (
	// SkipFieldCount marks a line that does not split into exactly three fields.
	SkipFieldCount SkipReason = "field_count"

	// SkipDistance marks a distance that is non-numeric, zero or negative.
	SkipDistance SkipReason = "distance"

	// SkipEmptyName marks a record with a blank city name.
	SkipEmptyName SkipReason = "empty_name"

	// SkipSelfLoop marks a record connecting a city to itself.
	SkipSelfLoop SkipReason = "self_loop"

	// SkipDuplicate marks a city pair that was already loaded; the first
	// distance is kept.
	SkipDuplicate SkipReason = "duplicate"
)

// Report summarises one load.
type Report struct {
	// Lines is the number of physical lines read, blank ones included.
	Lines int

	// Records is the number of non-blank lines.
	Records int

	// Added is the number of edges added to the graph.
	Added int

	// Skipped counts dropped records per reason.
	Skipped map[SkipReason]int
}

// SkippedTotal returns the number of records dropped for any reason.
func (r *Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}

	return total
}

// Reasons returns the reasons with a non-zero count, sorted.
func (r *Report) Reasons() []SkipReason {
	out := make([]SkipReason, 0, len(r.Skipped))
	for reason, n := range r.Skipped {
		if n > 0 {
			out = append(out, reason)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (r *Report) skip(reason SkipReason) {
	r.Skipped[reason]++
}

// Option configures a load via functional arguments.
type Option func(*Options)

// Options holds the collaborators of a load.
type Options struct {
	// Logger receives a debug line per skipped record and an info summary.
	Logger log.Logger

	// Recorder, if non-nil, receives load metrics.
	Recorder *metrics.Recorder
}

// DefaultOptions returns Options with a discarding logger and no recorder.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(log.Config{
			Level:       log.LevelError,
			Destination: log.DestinationStdout,
			Stdout:      io.Discard,
		}),
	}
}

// WithLogger sets the logger used during the load.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}
