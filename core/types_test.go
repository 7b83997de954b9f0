package core_test

import (
	"testing"

	"github.com/katalvlaran/citygraph/core"
	"github.com/stretchr/testify/assert"
)

// TestNewNode_Trims verifies that NewNode strips surrounding whitespace
// and that Nodes compare by name.
func TestNewNode_Trims(t *testing.T) {
	n := core.NewNode("  Berlin \t")
	assert.Equal(t, "Berlin", n.Name)
	assert.Equal(t, core.Node{Name: "Berlin"}, n)
	assert.Equal(t, "Berlin", n.String())
}

// TestEdge_ReverseAndOther checks the directed-view helpers.
func TestEdge_ReverseAndOther(t *testing.T) {
	e := core.NewEdge("A", "B", 5)
	r := e.Reverse()

	assert.Equal(t, core.NewEdge("B", "A", 5), r)
	assert.Equal(t, e, r.Reverse()) // involution
	assert.Equal(t, core.NewNode("B"), e.Other(core.NewNode("A")))
	assert.Equal(t, core.NewNode("A"), e.Other(core.NewNode("B")))
}

// TestEdge_Key verifies that both orientations share one pair key and
// that distance does not participate.
func TestEdge_Key(t *testing.T) {
	ab := core.NewEdge("A", "B", 5)
	ba := core.NewEdge("B", "A", 9)
	ac := core.NewEdge("A", "C", 5)

	assert.Equal(t, ab.Key(), ba.Key())
	assert.Equal(t, core.PairKey{A: "A", B: "B"}, ba.Key())
	assert.True(t, ab.SameConnection(ba))
	assert.False(t, ab.SameConnection(ac))
	// Values still differ as triples.
	assert.NotEqual(t, ab, ba)
}
