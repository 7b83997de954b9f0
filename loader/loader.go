// Package loader builds a core.Graph from "CityA,CityB,Distance" text.
//
// Input format:
//
//	Berlin,Hamburg,289
//	Berlin, Munich , 585
//
// One record per line, comma separated, no header and no escaping. Fields
// are trimmed. Malformed records are skipped and counted in the Report;
// only a missing or unreadable input is an error.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/metrics"
)

const (
	fieldCount   = 3
	maxLineBytes = 1 << 20
	bom          = "\ufeff"
)

// LoadFile opens path and loads it with Load.
//
// Errors:
//   - ErrNotFound (wrapped) if path does not exist; the graph is nil.
//   - ErrRead (wrapped) for any other open or read failure.
func LoadFile(path string, opts ...Option) (*core.Graph, *Report, error) {
	o := buildOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.Logger.Warningf("File not found at %s", path)
			o.Recorder.LoadFailed(metrics.ResultNotFound)

			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		o.Recorder.LoadFailed(metrics.ResultError)

		return nil, nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	g, rep, err := load(f, o)
	if err != nil {
		return nil, rep, err
	}
	o.Logger.Infof("Loaded %s: %d nodes, %d edges, %d records skipped",
		path, g.NodeCount(), g.EdgeCount(), rep.SkippedTotal())

	return g, rep, nil
}

// Load reads records from r into a fresh graph.
//
// Steps:
//  1. Scan line by line; blank lines are ignored.
//  2. Split on ',' and require exactly three fields.
//  3. Trim names; parse the trimmed distance as base-10 (failure ⇒ 0).
//  4. Drop the record unless distance > 0 and both names are usable.
//  5. AddEdge; an existing pair counts as SkipDuplicate.
//
// An empty or fully skipped input yields an empty graph and nil error.
func Load(r io.Reader, opts ...Option) (*core.Graph, *Report, error) {
	return load(r, buildOptions(opts))
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func load(r io.Reader, o Options) (*core.Graph, *Report, error) {
	g := core.NewGraph()
	rep := &Report{Skipped: make(map[SkipReason]int)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		rep.Lines++
		line := sc.Text()
		if rep.Lines == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rep.Records++

		e, reason, ok := parseRecord(line)
		if !ok {
			rep.skip(reason)
			o.Logger.Debugf("Skipping line %d (%s): %q", rep.Lines, reason, line)
			continue
		}
		added, err := g.AddEdge(e)
		if err != nil {
			// Unreachable after parseRecord; counted, not fatal.
			rep.skip(reasonFor(err))
			o.Logger.Debugf("Skipping line %d (%v): %q", rep.Lines, err, line)
			continue
		}
		if !added {
			rep.skip(SkipDuplicate)
			o.Logger.Debugf("Skipping line %d (%s): %s-%s already loaded", rep.Lines, SkipDuplicate, e.From, e.To)
			continue
		}
		rep.Added++
	}
	if err := sc.Err(); err != nil {
		o.Recorder.LoadFailed(metrics.ResultError)

		return nil, rep, fmt.Errorf("%w: line %d: %w", ErrRead, rep.Lines+1, err)
	}

	for reason, n := range rep.Skipped {
		o.Recorder.RecordSkipped(string(reason), n)
	}
	o.Recorder.LoadSucceeded(g.NodeCount(), g.EdgeCount())

	return g, rep, nil
}

// parseRecord turns one non-blank line into an edge, or reports why not.
func parseRecord(line string) (core.Edge, SkipReason, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return core.Edge{}, SkipFieldCount, false
	}
	e := core.NewEdge(parts[0], parts[1], parseDistance(parts[2]))
	switch {
	case e.Distance <= 0:
		return core.Edge{}, SkipDistance, false
	case e.From.Name == "" || e.To.Name == "":
		return core.Edge{}, SkipEmptyName, false
	case e.From == e.To:
		return core.Edge{}, SkipSelfLoop, false
	}

	return e, "", true
}

// parseDistance parses a 32-bit base-10 integer, returning 0 on failure.
func parseDistance(field string) int64 {
	d, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
	if err != nil {
		return 0
	}

	return d
}

func reasonFor(err error) SkipReason {
	switch {
	case errors.Is(err, core.ErrBadDistance):
		return SkipDistance
	case errors.Is(err, core.ErrLoopNotAllowed):
		return SkipSelfLoop
	default:
		return SkipEmptyName
	}
}
