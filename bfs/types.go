// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the search starts.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is visited with its hop count from the
	// start. Returning an error aborts the search.
	OnVisit func(n core.Node, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many edges from the start.
	MaxHops int

	err error
}

// DefaultOptions returns BFSOptions with a background context, no hop
// limit and a no-op visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(core.Node, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(n core.Node, hops int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops limits the search radius.
//
//	h > 0: limit to h hops
//	h == 0: no limit
//	h < 0: invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *BFSOptions) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// Result holds the outcome of a traversal:
//   - Order: nodes in visit sequence, start first.
//   - Hops: edges between the start and each reached node.
//   - Parent: predecessor of each reached node in the BFS tree.
type Result struct {
	Order  []core.Node
	Hops   map[core.Node]int
	Parent map[core.Node]core.Node
}

// Reached reports whether n was visited.
func (r *Result) Reached(n core.Node) bool {
	_, ok := r.Hops[n]

	return ok
}

// PathTo reconstructs the fewest-hops route from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.Node) ([]core.Node, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest.Name)
	}
	path := []core.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
