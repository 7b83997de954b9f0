// Package prim_kruskal defines configuration options, the Result type and
// sentinel errors for MST computation.
package prim_kruskal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// ErrNilGraph indicates that no graph was supplied.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is an immutable snapshot of one MST computation.
type Result struct {
	// TotalDistance is the sum of Edges' distances.
	TotalDistance int64

	// Edges are the accepted edges in acceptance order. For Prim each edge
	// is a directed view whose From is already in the tree.
	Edges []core.Edge

	// Root is the start node of Prim; zero for Kruskal and empty graphs.
	Root core.Node

	// CoveredNodes is the number of nodes joined by the result, the root
	// included.
	CoveredNodes int

	// TotalNodes is the number of nodes in the graph.
	TotalNodes int

	// Trees is the number of trees in the result: 1 for Prim, one per
	// connected component for Kruskal, 0 for an empty graph.
	Trees int

	// Unreached lists, in graph order, the nodes Prim could not reach.
	Unreached []core.Node
}

// Spanning reports whether the result is a single tree over every node.
// An empty graph is trivially spanned.
func (r Result) Spanning() bool {
	return r.CoveredNodes == r.TotalNodes && r.Trees <= 1
}

// MSTOptions configures which MST algorithm to run and how.
//
// Fields:
//
//	Method string — MethodPrim (default) or MethodKruskal.
//	Root   string — start city for Prim, matched case-insensitively;
//	                 empty means "first node in graph order". Ignored by Kruskal.
//	Ctx    context.Context — checked once per main-loop iteration.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting city for Prim's algorithm. Unused by Kruskal.
	Root string

	// Ctx allows cancellation of long runs.
	Ctx context.Context
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting city for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// DefaultOptions returns MSTOptions for Prim from the first node.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
		Ctx:    context.Background(),
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodPrim (default): calls Prim.
//	– MethodKruskal:        calls Kruskal.
//	– Otherwise:            returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	switch o.Method {
	case MethodPrim:
		return Prim(graph, opts...)
	case MethodKruskal:
		return Kruskal(graph, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	return m == MethodPrim || m == MethodKruskal
}

// checkCtx returns ctx.Err() without blocking.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
