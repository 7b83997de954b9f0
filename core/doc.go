// Package core provides the in-memory city graph: named Nodes, undirected
// weighted Edges and a Graph that indexes both by insertion order and by
// adjacency.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only. Each connection (A,B,d) is stored once in the edge
//     catalog and twice in the adjacency index, as the directed views A→B
//     under A and B→A under B. Traversal code can therefore always read
//     Edge.To as "the other endpoint".
//   - Positive integer distances (kilometres). Zero, negative and self-loop
//     edges are rejected.
//   - One edge per city pair. Adding a pair that already exists, in either
//     direction, is a no-op; the first distance wins.
//   - Append-only. There is no removal and no distance mutation; a reload
//     builds a fresh Graph.
//
// Determinism:
//
//	Nodes(), Edges() and every adjacency list preserve insertion order, so
//	a graph loaded twice from the same file iterates identically.
//
// Core Methods:
//
//	// Construction
//	AddNode(n Node) error                  // O(1), idempotent
//	AddEdge(e Edge) (added bool, err error) // O(1) amortized
//
//	// Views (copies, safe to hand to presentation code)
//	Nodes() []Node                          // O(V)
//	Edges() []Edge                          // O(E)
//	AdjacencyList() map[Node][]Edge         // O(V+E)
//	Neighbors(n Node) ([]Edge, error)       // O(deg n)
//
//	// Queries
//	FindNode(name string) (Node, bool)      // case-insensitive, O(1)
//	FindDistance(a, b string) (Edge, bool)  // case-insensitive direct edge, O(E)
//	Connections(city string) (Node, []Edge, error)
//
// Errors:
//
//	ErrEmptyName      – node name is empty
//	ErrBadDistance    – distance <= 0
//	ErrLoopNotAllowed – both endpoints name the same city
//	ErrNodeNotFound   – requested node does not exist
//
// All methods are safe for concurrent use; mutations take a write lock and
// queries a read lock.
package core
