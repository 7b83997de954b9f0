// Package bfs provides breadth-first search over a core.Graph of cities:
// hop counts, parent links and visit order from one start node, plus
// connected-component discovery.
//
// Distances are ignored; a hop is one direct connection. Neighbors are
// expanded in adjacency order, so results are deterministic.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/citygraph/core"
)

// queueItem pairs a node with its hop count.
type queueItem struct {
	node core.Node
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   map[core.Node][]core.Edge
	opts  BFSOptions
	queue []queueItem
	res   *Result
}

// Reachable runs breadth-first search on g from start.
// Returns ErrGraphNil, core.ErrNodeNotFound, ErrOptionViolation, a context
// error, or any error returned by the OnVisit hook.
func Reachable(g *core.Graph, start core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, core.ErrNodeNotFound
	}

	w := newWalker(g.AdjacencyList(), o)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// Components partitions g into connected components. Components are
// ordered by their first node in graph order, and nodes within a component
// by BFS visit order from that first node.
func Components(g *core.Graph, opts ...Option) ([][]core.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Hop limits would split components.
	o.MaxHops = 0

	adj := g.AdjacencyList()
	seen := make(map[core.Node]bool, len(adj))
	var out [][]core.Node
	for _, n := range g.Nodes() {
		if seen[n] {
			continue
		}
		w := newWalker(adj, o)
		w.enqueue(n, 0, nil)
		if err := w.loop(); err != nil {
			return nil, err
		}
		for _, v := range w.res.Order {
			seen[v] = true
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

func newWalker(adj map[core.Node][]core.Edge, o BFSOptions) *walker {
	n := len(adj)

	return &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]core.Node, 0, n),
			Hops:   make(map[core.Node]int, n),
			Parent: make(map[core.Node]core.Node, n),
		},
	}
}

// enqueue marks n reached at hops h and records its parent.
func (w *walker) enqueue(n core.Node, h int, parent *core.Node) {
	w.res.Hops[n] = h
	if parent != nil {
		w.res.Parent[n] = *parent
	}
	w.queue = append(w.queue, queueItem{node: n, hops: h})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.node.Name, err)
		}

		next := item.hops + 1
		if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
			continue
		}
		for _, e := range w.adj[item.node] {
			if !w.res.Reached(e.To) {
				parent := item.node
				w.enqueue(e.To, next, &parent)
			}
		}
	}

	return nil
}
