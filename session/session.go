// Package session holds the graph an application is currently working with.
//
// A Session is loaded once and then queried many times. Load and Reload
// build a complete graph off to the side and publish it with a single
// atomic store, so concurrent readers see either the old graph or the new
// one, never a partially built one. A failed load leaves the previous
// graph in place.
package session

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/loader"
	"github.com/katalvlaran/citygraph/metrics"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	log "go.arcalot.io/log/v2"
)

var (
	// ErrNoGraph is returned by queries issued before a successful load.
	ErrNoGraph = errors.New("session: no graph loaded")

	// ErrNoSource is returned by Reload when nothing was loaded before.
	ErrNoSource = errors.New("session: no data file to reload")
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for the session and the loads it runs.
func WithLogger(l log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder for loads and MST runs.
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// Session is safe for concurrent use.
type Session struct {
	graph  atomic.Pointer[core.Graph]
	report atomic.Pointer[loader.Report]

	// loadMu serializes loads; queries never take it.
	loadMu sync.Mutex
	path   string

	logger   log.Logger
	recorder *metrics.Recorder
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{
		logger: log.New(log.Config{
			Level:       log.LevelError,
			Destination: log.DestinationStdout,
			Stdout:      io.Discard,
		}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load reads path into a fresh graph and makes it current.
// On error the previously loaded graph, if any, stays current.
func (s *Session) Load(path string) (*loader.Report, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	return s.loadLocked(path)
}

// Reload re-reads the file of the last successful Load.
func (s *Session) Reload() (*loader.Report, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.path == "" {
		return nil, ErrNoSource
	}

	return s.loadLocked(s.path)
}

func (s *Session) loadLocked(path string) (*loader.Report, error) {
	g, rep, err := loader.LoadFile(path,
		loader.WithLogger(s.logger),
		loader.WithRecorder(s.recorder),
	)
	if err != nil {
		if s.Loaded() {
			s.logger.Warningf("Load of %s failed, keeping previous graph: %v", path, err)
		}

		return rep, err
	}
	s.graph.Store(g)
	s.report.Store(rep)
	s.path = path

	return rep, nil
}

// Loaded reports whether a graph is available.
func (s *Session) Loaded() bool {
	return s.graph.Load() != nil
}

// Graph returns the current graph or ErrNoGraph.
func (s *Session) Graph() (*core.Graph, error) {
	g := s.graph.Load()
	if g == nil {
		return nil, ErrNoGraph
	}

	return g, nil
}

// Report returns the report of the current graph's load, or nil.
func (s *Session) Report() *loader.Report {
	return s.report.Load()
}

// FindDistance looks up the direct connection between cities a and b.
func (s *Session) FindDistance(a, b string) (core.Edge, bool, error) {
	g, err := s.Graph()
	if err != nil {
		return core.Edge{}, false, err
	}
	e, ok := g.FindDistance(a, b)

	return e, ok, nil
}

// Connections returns city and its direct connections.
func (s *Session) Connections(city string) (core.Node, []core.Edge, error) {
	g, err := s.Graph()
	if err != nil {
		return core.Node{}, nil, err
	}

	return g.Connections(city)
}

// Components returns the connected components of the current graph.
func (s *Session) Components() ([][]core.Node, error) {
	g, err := s.Graph()
	if err != nil {
		return nil, err
	}

	return bfs.Components(g)
}

// MST computes a minimum spanning tree of the current graph and records
// the run.
func (s *Session) MST(opts ...prim_kruskal.Option) (prim_kruskal.Result, error) {
	g, err := s.Graph()
	if err != nil {
		return prim_kruskal.Result{}, err
	}
	o := prim_kruskal.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res, err := prim_kruskal.Compute(g, opts...)
	if err != nil {
		return prim_kruskal.Result{}, fmt.Errorf("session: mst: %w", err)
	}
	s.recorder.ObserveMST(o.Method, res.Spanning(), res.TotalDistance, time.Since(start))
	if !res.Spanning() {
		s.logger.Warningf("MST covers %d of %d cities", res.CoveredNodes, res.TotalNodes)
	}
	s.logger.Debugf("MST (%s): %d edges, total %d km", o.Method, len(res.Edges), res.TotalDistance)

	return res, nil
}
