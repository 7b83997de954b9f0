// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from one start city using a stable min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/citygraph/core"
)

// Prim computes the MST of the start node's connected component.
//
// Error Conditions:
//   - ErrNilGraph         : if graph is nil.
//   - core.ErrNodeNotFound: if WithRoot names an unknown city.
//   - ctx.Err()           : if the WithContext context is cancelled.
//
// Steps:
//  1. Validate graph; zero nodes → zero Result.
//  2. Resolve the start node (WithRoot, else first node in graph order).
//  3. Mark it visited and push its adjacency views.
//  4. While the heap is non-empty and not every node is visited:
//     a. Pop the smallest (distance, seq) edge u→v.
//     b. If v is visited, discard it (it would close a cycle).
//     c. Otherwise accept it, mark v, and push v's views to unvisited nodes.
//  5. Sum accepted distances and record coverage.
//
// A disconnected graph is not an error: the loop ends when the heap drains
// and Result.Unreached holds the nodes of other components.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate.
	if graph == nil {
		return Result{}, ErrNilGraph
	}
	o := buildOptions(opts)

	nodes := graph.Nodes()
	n := len(nodes)
	if n == 0 {
		return Result{}, nil
	}

	// 2. Resolve the start node.
	root := nodes[0]
	if o.Root != "" {
		var ok bool
		if root, ok = graph.FindNode(o.Root); !ok {
			return Result{}, core.ErrNodeNotFound
		}
	}

	// One consistent snapshot for the whole run.
	adj := graph.AdjacencyList()
	visited := make(map[core.Node]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	// 3. Seed the heap.
	pq := &edgePQ{}
	heap.Init(pq)
	visited[root] = true
	pushFrontier(pq, adj[root], visited)

	// 4. Main loop.
	for pq.Len() > 0 && len(visited) < n {
		if err := checkCtx(o.Ctx); err != nil {
			return Result{}, err
		}
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		total += e.Distance
		pushFrontier(pq, adj[e.To], visited)
	}

	// 5. Coverage.
	res := Result{
		TotalDistance: total,
		Edges:         mst,
		Root:          root,
		CoveredNodes:  len(visited),
		TotalNodes:    n,
		Trees:         1,
	}
	for _, v := range nodes {
		if !visited[v] {
			res.Unreached = append(res.Unreached, v)
		}
	}

	return res, nil
}

// pushFrontier queues every view whose far end is not yet in the tree.
// Views to visited nodes could only ever be discarded, so they are skipped
// here; the relative order of the pushed views is unchanged.
func pushFrontier(pq *edgePQ, views []core.Edge, visited map[core.Node]bool) {
	for _, e := range views {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}
}
