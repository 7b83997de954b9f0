package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(name string) core.Node { return core.NewNode(name) }

// buildTwoIslands returns A—B—C—D (a path) and E—F, plus isolated G.
func buildTwoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []core.Edge{
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", 1),
		core.NewEdge("E", "F", 2),
		core.NewEdge("C", "D", 1),
	} {
		_, err := g.AddEdge(e)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddNode(node("G")))

	return g
}

func TestReachable_Path(t *testing.T) {
	g := buildTwoIslands(t)

	res, err := bfs.Reachable(g, node("A"))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{node("A"), node("B"), node("C"), node("D")}, res.Order)
	assert.Equal(t, 3, res.Hops[node("D")])
	assert.False(t, res.Reached(node("E")))

	path, err := res.PathTo(node("D"))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{node("A"), node("B"), node("C"), node("D")}, path)

	_, err = res.PathTo(node("F"))
	assert.Error(t, err)
}

func TestReachable_MaxHops(t *testing.T) {
	g := buildTwoIslands(t)

	res, err := bfs.Reachable(g, node("A"), bfs.WithMaxHops(1))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{node("A"), node("B")}, res.Order)

	_, err = bfs.Reachable(g, node("A"), bfs.WithMaxHops(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestReachable_Errors(t *testing.T) {
	g := buildTwoIslands(t)

	_, err := bfs.Reachable(nil, node("A"))
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Reachable(g, node("Z"))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	boom := errors.New("boom")
	_, err = bfs.Reachable(g, node("A"), bfs.WithOnVisit(func(n core.Node, _ int) error {
		if n == node("C") {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Reachable(g, node("A"), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := buildTwoIslands(t)

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]core.Node{
		{node("A"), node("B"), node("C"), node("D")},
		{node("E"), node("F")},
		{node("G")},
	}, comps)

	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
