// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order, each city pair once.
// Concurrency:
//   - AddEdge under write lock; queries under read lock.

package core

// AddEdge inserts the undirected connection e.
//
// Steps:
//  1. Validate names, distance and loops.
//  2. Lock; if the pair already exists in either direction, return false.
//  3. Append e to the edge catalog and register the pair.
//  4. Ensure both endpoints via addNodeLocked.
//  5. Append e under e.From and e.Reverse() under e.To.
//
// Returns added == false with a nil error when the pair is already present;
// the stored distance is left untouched.
//
// Errors:
//   - ErrEmptyName if either endpoint is unnamed.
//   - ErrBadDistance if e.Distance <= 0.
//   - ErrLoopNotAllowed if e.From == e.To.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (bool, error) {
	// 1) Input validation
	if e.From.Name == "" || e.To.Name == "" {
		return false, ErrEmptyName
	}
	if e.Distance <= 0 {
		return false, ErrBadDistance
	}
	if e.From == e.To {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Undirected duplicate check
	key := e.Key()
	if _, exists := g.pairs[key]; exists {
		return false, nil
	}

	// 3) Catalog
	g.pairs[key] = len(g.edges)
	g.edges = append(g.edges, e)

	// 4) Endpoints
	g.addNodeLocked(e.From)
	g.addNodeLocked(e.To)

	// 5) Both directed views
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	g.adjacency[e.To] = append(g.adjacency[e.To], e.Reverse())

	return true, nil
}

// HasEdge reports whether a and b are directly connected, in either
// direction. Names are matched exactly.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[Edge{From: a, To: b}.Key()]

	return ok
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
