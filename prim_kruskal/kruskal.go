// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It produces a minimum spanning forest: one tree per connected component.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/citygraph/core"
)

// Kruskal computes a minimum spanning forest of graph using a disjoint-set
// (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : if graph is nil.
//   - ctx.Err()   : if the WithContext context is cancelled.
//
// Steps:
//  1. Validate; zero nodes → zero Result.
//  2. Stable-sort the edge catalog by ascending distance, so equal
//     distances keep load order.
//  3. Initialize parent/rank for every node.
//  4. For each edge (u,v): if find(u) != find(v), union them and accept.
//  5. Stop once |V|-1 edges are accepted.
//  6. Trees = |V| - accepted edges.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph, opts ...Option) (Result, error) {
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

	// 2. Sort a copy of the catalog.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Distance < edges[j].Distance
	})

	// 3. Disjoint-set.
	parent := make(map[core.Node]core.Node, n)
	rank := make(map[core.Node]int, n)
	for _, v := range nodes {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u core.Node) core.Node {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v, reporting whether they were apart.
	union := func(u, v core.Node) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 4-5. Scan.
	mst := make([]core.Edge, 0, n-1)
	var total int64
	for _, e := range edges {
		if len(mst) == n-1 {
			break
		}
		if err := checkCtx(o.Ctx); err != nil {
			return Result{}, err
		}
		if union(e.From, e.To) {
			mst = append(mst, e)
			total += e.Distance
		}
	}

	// 6. A forest over n nodes with k edges has n-k trees and covers every node.
	return Result{
		TotalDistance: total,
		Edges:         mst,
		CoveredNodes:  n,
		TotalNodes:    n,
		Trees:         n - len(mst),
	}, nil
}
