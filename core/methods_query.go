// File: methods_query.go
// Role: Name-based lookups used by presentation code (FindDistance, Connections).
// Determinism:
//   - FindDistance returns the first matching edge in insertion order.
// Concurrency:
//   - Read lock only.

package core

import "strings"

// FindDistance looks up the direct edge between the cities named a and b.
// Matching ignores case and surrounding whitespace and accepts either
// orientation. This is a direct-edge lookup, not a shortest-path search:
// two cities joined only through a third are reported as not found.
//
// The returned Edge keeps its catalog orientation.
// Complexity: O(E).
func (g *Graph) FindDistance(a, b string) (Edge, bool) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)

	g.mu.RLock()
	defer g.mu.RUnlock()

	var e Edge
	for _, e = range g.edges {
		if matchName(e.From, a) && matchName(e.To, b) ||
			matchName(e.From, b) && matchName(e.To, a) {
			return e, true
		}
	}

	return Edge{}, false
}

// Connections resolves city case-insensitively and returns the node with a
// copy of its directed views.
//
// A city that exists but has no edges yields an empty, non-nil slice and a
// nil error, so callers can tell it apart from ErrNodeNotFound.
func (g *Graph) Connections(city string) (Node, []Edge, error) {
	n, ok := g.FindNode(city)
	if !ok {
		return Node{}, nil, ErrNodeNotFound
	}
	views, err := g.Neighbors(n)
	if err != nil {
		return Node{}, nil, err
	}

	return n, views, nil
}

func matchName(n Node, name string) bool {
	return strings.EqualFold(n.Name, name)
}
