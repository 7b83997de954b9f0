// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, AdjacencyList, Degree).
// Determinism:
//   - Every adjacency list is in the order edges were added to that node.
// Concurrency:
//   - Read lock only; all results are independent copies.

package core

// Neighbors returns the directed views incident to n. Each view has
// From == n and To set to the neighbouring city.
//
// Errors:
//   - ErrNodeNotFound if n is not in the graph.
//
// Complexity: O(deg n).
func (g *Graph) Neighbors(n Node) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	views, ok := g.adjacency[n]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge, len(views))
	copy(out, views)

	return out, nil
}

// AdjacencyList returns a deep copy of the adjacency index: every node maps
// to its directed views, nodes without edges map to an empty slice.
// Mutating the result never affects the graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[Node][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[Node][]Edge, len(g.adjacency))
	var n Node
	var views []Edge
	for n, views = range g.adjacency {
		cp := make([]Edge, len(views))
		copy(cp, views)
		out[n] = cp
	}

	return out
}

// Degree returns the number of cities directly connected to n.
func (g *Graph) Degree(n Node) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	views, ok := g.adjacency[n]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(views), nil
}
