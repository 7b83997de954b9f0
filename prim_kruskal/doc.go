// Package prim_kruskal computes Minimum Spanning Trees over a *core.Graph of
// cities: Prim's algorithm (the primary calculator) and Kruskal's algorithm
// (a cross-check that also yields the full spanning forest).
//
// What & Why
//
//   - An MST of a connected, undirected, weighted graph is the subset of
//     edges that joins every city with the least total distance and no cycle.
//     It answers "what is the cheapest road network that still connects
//     everything we loaded?".
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: grow one tree from a start node. Candidate edges live in a
//     binary min-heap keyed by (distance, push sequence); the sequence makes
//     ties FIFO, so among equal distances the edge queued first is taken first.
//
//   - Start node: WithRoot(name) if given, otherwise the first node in the
//     graph's insertion order. Repeated calls on an unchanged graph are
//     therefore identical.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Kruskal(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: stable-sort the edge catalog by distance (ties keep load
//     order) and merge components with a union-find.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
// Disconnected graphs
//
//	Neither algorithm treats a disconnected graph as an error. Prim stops when
//	its queue drains and returns the tree of the start node's component;
//	Result.Unreached lists the rest. Kruskal returns a minimum spanning forest
//	with one tree per component (Result.Trees). In both cases
//	Result.Spanning() is false.
//
// Error Conditions
//
//   - ErrNilGraph         : graph is nil.
//   - core.ErrNodeNotFound: WithRoot names a city that is not in the graph.
//   - ErrUnknownMethod    : Compute was asked for an unsupported method.
//   - context errors      : the WithContext context was cancelled mid-run.
//
// An empty graph is not an error: the Result is zero.
package prim_kruskal
