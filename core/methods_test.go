// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order determinism for Nodes/Edges/adjacency.
//   - Validate undirected dedup and the two-directed-views invariant.
//   - Cover the case-insensitive query surface.
package core_test

import (
	"testing"

	"github.com/katalvlaran/citygraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	nodeA = core.NewNode("A")
	nodeB = core.NewNode("B")
	nodeC = core.NewNode("C")
)

// buildTriangle constructs A—B(5), B—C(3), A—C(10).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustAdd(t, g, core.NewEdge("A", "B", 5))
	mustAdd(t, g, core.NewEdge("B", "C", 3))
	mustAdd(t, g, core.NewEdge("A", "C", 10))

	return g
}

func mustAdd(t *testing.T, g *core.Graph, e core.Edge) {
	t.Helper()
	added, err := g.AddEdge(e)
	require.NoError(t, err)
	require.True(t, added, "edge %v should be new", e)
}

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyName)

	require.NoError(t, g.AddNode(nodeA))
	require.NoError(t, g.AddNode(nodeA)) // idempotent
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasNode(nodeA))
	assert.False(t, g.HasNode(nodeB))

	// A lone node still has an (empty) adjacency entry.
	adj := g.AdjacencyList()
	views, ok := adj[nodeA]
	assert.True(t, ok)
	assert.Empty(t, views)
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	cases := []struct {
		name string
		edge core.Edge
		want error
	}{
		{"empty from", core.NewEdge("", "B", 1), core.ErrEmptyName},
		{"empty to", core.NewEdge("A", " ", 1), core.ErrEmptyName},
		{"zero distance", core.NewEdge("A", "B", 0), core.ErrBadDistance},
		{"negative distance", core.NewEdge("A", "B", -4), core.ErrBadDistance},
		{"self loop", core.NewEdge("A", "A", 3), core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			added, err := g.AddEdge(tc.edge)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, added)
		})
	}
	// Rejected edges never create nodes.
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

// TestGraph_AddEdge_Undirected verifies that a pair is stored once and both
// directed views appear in the adjacency index.
func TestGraph_AddEdge_Undirected(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, core.NewEdge("A", "B", 5))

	// Same pair, either direction, any distance: no-op.
	for _, dup := range []core.Edge{
		core.NewEdge("A", "B", 5),
		core.NewEdge("B", "A", 5),
		core.NewEdge("B", "A", 42),
	} {
		added, err := g.AddEdge(dup)
		require.NoError(t, err)
		assert.False(t, added)
	}

	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 5)}, g.Edges())
	assert.True(t, g.HasEdge(nodeA, nodeB))
	assert.True(t, g.HasEdge(nodeB, nodeA))

	adj := g.AdjacencyList()
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 5)}, adj[nodeA])
	assert.Equal(t, []core.Edge{core.NewEdge("B", "A", 5)}, adj[nodeB])
}

// TestGraph_InsertionOrder anchors the ordering contract of all views.
func TestGraph_InsertionOrder(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, []core.Node{nodeA, nodeB, nodeC}, g.Nodes())
	assert.Equal(t, []core.Edge{
		core.NewEdge("A", "B", 5),
		core.NewEdge("B", "C", 3),
		core.NewEdge("A", "C", 10),
	}, g.Edges())

	views, err := g.Neighbors(nodeA)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("A", "B", 5), core.NewEdge("A", "C", 10)}, views)

	views, err = g.Neighbors(nodeC)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge("C", "B", 3), core.NewEdge("C", "A", 10)}, views)
}

// TestGraph_AdjacencyMatchesCatalog checks, for every node, that each
// directed view has From == node and a distance equal to its catalog edge,
// and that there is exactly one view per incident edge.
func TestGraph_AdjacencyMatchesCatalog(t *testing.T) {
	g := buildTriangle(t)
	mustAdd(t, g, core.NewEdge("C", "D", 7))

	catalog := make(map[core.PairKey]int64)
	incident := make(map[core.Node]int)
	for _, e := range g.Edges() {
		catalog[e.Key()] = e.Distance
		incident[e.From]++
		incident[e.To]++
	}

	adj := g.AdjacencyList()
	require.Len(t, adj, g.NodeCount())
	for _, n := range g.Nodes() {
		views := adj[n]
		assert.Len(t, views, incident[n], "views of %s", n)
		for _, v := range views {
			assert.Equal(t, n, v.From)
			d, ok := catalog[v.Key()]
			require.True(t, ok, "view %v has no catalog edge", v)
			assert.Equal(t, d, v.Distance)
		}
		deg, err := g.Degree(n)
		require.NoError(t, err)
		assert.Equal(t, incident[n], deg)
	}
}

// TestGraph_ViewsAreCopies ensures callers cannot corrupt internal state.
func TestGraph_ViewsAreCopies(t *testing.T) {
	g := buildTriangle(t)

	nodes := g.Nodes()
	nodes[0] = core.NewNode("Z")
	edges := g.Edges()
	edges[0].Distance = 999
	adj := g.AdjacencyList()
	adj[nodeA][0].Distance = 999
	delete(adj, nodeB)
	views, err := g.Neighbors(nodeA)
	require.NoError(t, err)
	views[0].To = nodeC

	assert.Equal(t, nodeA, g.Nodes()[0])
	assert.Equal(t, int64(5), g.Edges()[0].Distance)
	fresh := g.AdjacencyList()
	assert.Equal(t, core.NewEdge("A", "B", 5), fresh[nodeA][0])
	assert.Contains(t, fresh, nodeB)
}

func TestGraph_Neighbors_NotFound(t *testing.T) {
	g := buildTriangle(t)

	_, err := g.Neighbors(core.NewNode("Q"))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree(core.NewNode("Q"))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_FindNode(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, core.NewEdge("Paris", "Lyon", 465))
	require.NoError(t, g.AddNode(core.NewNode("paris")))

	n, ok := g.FindNode("LYON")
	assert.True(t, ok)
	assert.Equal(t, core.NewNode("Lyon"), n)

	// Exact spelling wins, otherwise the first registration does.
	n, ok = g.FindNode("paris")
	assert.True(t, ok)
	assert.Equal(t, core.NewNode("paris"), n)
	n, ok = g.FindNode(" PARIS ")
	assert.True(t, ok)
	assert.Equal(t, core.NewNode("Paris"), n)

	_, ok = g.FindNode("Nice")
	assert.False(t, ok)
}

// TestGraph_FindDistance covers case-insensitive, either-order matching
// and the direct-edge-only contract.
func TestGraph_FindDistance(t *testing.T) {
	g := core.NewGraph()
	mustAdd(t, g, core.NewEdge("A", "B", 5))
	mustAdd(t, g, core.NewEdge("B", "C", 3))

	for _, q := range [][2]string{{"a", "b"}, {"B", "A"}, {" A ", "b"}} {
		e, ok := g.FindDistance(q[0], q[1])
		assert.True(t, ok, "query %v", q)
		assert.Equal(t, core.NewEdge("A", "B", 5), e)
	}

	// A and C are only connected through B.
	_, ok := g.FindDistance("A", "C")
	assert.False(t, ok)
	_, ok = g.FindDistance("A", "Nowhere")
	assert.False(t, ok)
}

// TestGraph_Connections distinguishes "not found" from "no connections".
func TestGraph_Connections(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddNode(core.NewNode("Island")))

	n, views, err := g.Connections("b")
	require.NoError(t, err)
	assert.Equal(t, nodeB, n)
	assert.Equal(t, []core.Edge{core.NewEdge("B", "A", 5), core.NewEdge("B", "C", 3)}, views)

	n, views, err = g.Connections("island")
	require.NoError(t, err)
	assert.Equal(t, core.NewNode("Island"), n)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	_, views, err = g.Connections("Atlantis")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Nil(t, views)
}
