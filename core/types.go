// Package core defines the central Graph, Node, and Edge types.
//
// This file declares Node, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates that a Node has an empty name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadDistance indicates a zero or negative distance.
	ErrBadDistance = errors.New("core: distance must be positive")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same city.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node identifies a city by name. Two Nodes with the same Name are the same
// node; Node is comparable and safe to use as a map key.
type Node struct {
	// Name is the city name as it appeared in the source, trimmed.
	Name string
}

// NewNode returns a Node for name with surrounding whitespace removed.
func NewNode(name string) Node {
	return Node{Name: strings.TrimSpace(name)}
}

// String returns the city name.
func (n Node) String() string { return n.Name }

// Edge is an undirected, weighted connection between two Nodes.
//
// In the edge catalog From/To keep the orientation the edge was added with.
// In adjacency lists an Edge is a directed view: From is always the node
// whose list it belongs to and To is the far endpoint.
type Edge struct {
	// From is the first endpoint (or the owning node, in an adjacency view).
	From Node

	// To is the second endpoint (or the far node, in an adjacency view).
	To Node

	// Distance is the length of the connection in kilometres.
	Distance int64
}

// NewEdge builds an Edge between the cities named a and b.
func NewEdge(a, b string, distance int64) Edge {
	return Edge{From: NewNode(a), To: NewNode(b), Distance: distance}
}

// Reverse returns the opposite directed view of e.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Distance: e.Distance}
}

// Other returns the endpoint of e that is not n. If n is not an endpoint,
// From is returned.
func (e Edge) Other(n Node) Node {
	if e.From == n {
		return e.To
	}

	return e.From
}

// Key returns the order-independent identity of the city pair e connects.
// (A,B,d) and (B,A,d) share a Key.
func (e Edge) Key() PairKey {
	if e.To.Name < e.From.Name {
		return PairKey{A: e.To.Name, B: e.From.Name}
	}

	return PairKey{A: e.From.Name, B: e.To.Name}
}

// SameConnection reports whether e and o join the same pair of cities,
// regardless of orientation or distance.
func (e Edge) SameConnection(o Edge) bool { return e.Key() == o.Key() }

// PairKey is an unordered city pair with A <= B.
type PairKey struct {
	A, B string
}

// Graph is the in-memory city graph.
//
// mu guards every field below it. nodeIndex maps a name to its position in
// nodes; folded maps the lower-cased name to the first node registered
// under it, for case-insensitive lookup.
type Graph struct {
	mu sync.RWMutex

	// Storage
	nodes     []Node
	nodeIndex map[string]int
	folded    map[string]Node
	edges     []Edge
	pairs     map[PairKey]int // pair → index into edges

	// adjacency[n] holds one directed view per edge incident to n.
	adjacency map[Node][]Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodeIndex: make(map[string]int),
		folded:    make(map[string]Node),
		pairs:     make(map[PairKey]int),
		adjacency: make(map[Node][]Edge),
	}
}

// fold normalises a name for case-insensitive comparison.
func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
