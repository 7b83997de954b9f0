// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/FindNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - FindNode() resolves case collisions to the first node registered.
// Concurrency:
//   - AddNode under write lock; queries under read lock.

package core

// AddNode inserts n into the graph if absent and gives it an empty
// adjacency list. Adding a node that already exists is a no-op.
//
// Errors:
//   - ErrEmptyName if n.Name == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.Name == "" {
		return ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(n)

	return nil
}

// addNodeLocked registers n. Caller must hold g.mu for writing.
func (g *Graph) addNodeLocked(n Node) {
	if _, ok := g.nodeIndex[n.Name]; ok {
		return
	}
	g.nodeIndex[n.Name] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adjacency[n] = []Edge{}

	// First registration wins for case-insensitive lookup.
	key := fold(n.Name)
	if _, ok := g.folded[key]; !ok {
		g.folded[key] = n
	}
}

// HasNode reports whether n is part of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeIndex[n.Name]

	return ok
}

// FindNode resolves name to a node, ignoring case and surrounding
// whitespace. The boolean is false when no such city exists.
// Complexity: O(1).
func (g *Graph) FindNode(name string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Exact match first so "paris" and "Paris" can coexist.
	if i, ok := g.nodeIndex[name]; ok {
		return g.nodes[i], true
	}
	n, ok := g.folded[fold(name)]

	return n, ok
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
