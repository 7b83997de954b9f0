// Package format renders graphs, edge lists and MST results as plain text.
//
// Every renderer walks its input in a fixed order (node insertion order for
// graphs, slice order for edges), so output is byte-for-byte reproducible.
package format

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/prim_kruskal"
)

// AdjacencyList renders every node followed by its direct connections:
//
//	Adjacency List:
//	Berlin:
//	  -> Hamburg (289 km)
//
// A nil graph renders as the header alone.
func AdjacencyList(g *core.Graph) string {
	var sb strings.Builder
	sb.WriteString("Adjacency List:\n")
	if g == nil {
		return sb.String()
	}
	adj := g.AdjacencyList()
	for _, n := range g.Nodes() {
		fmt.Fprintf(&sb, "%s:\n", n)
		for _, e := range adj[n] {
			fmt.Fprintf(&sb, "  -> %s (%d km)\n", e.To, e.Distance)
		}
	}

	return sb.String()
}

// Summary reports node and edge totals.
func Summary(g *core.Graph) string {
	var nodes, edges int
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}

	return fmt.Sprintf("Total Nodes: %d\nTotal Edges: %d\n", nodes, edges)
}

// Edges renders edges as an aligned three-column table. An empty slice
// renders the header only.
func Edges(edges []core.Edge) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tDISTANCE (km)")
	for _, e := range edges {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.From, e.To, e.Distance)
	}
	// Flush on a strings.Builder cannot fail.
	_ = tw.Flush()

	return sb.String()
}

// Connections renders the direct connections of city, one per line.
func Connections(city core.Node, views []core.Edge) string {
	if len(views) == 0 {
		return fmt.Sprintf("No direct connections for %s\n", city)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Connections for %s:\n", city)
	for _, e := range views {
		fmt.Fprintf(&sb, "  %s (%d km)\n", e.To, e.Distance)
	}

	return sb.String()
}

// MST renders a spanning tree result: the total, the accepted edges and,
// when the graph was not fully covered, a warning listing unreached cities.
func MST(r prim_kruskal.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total MST distance: %d km\n", r.TotalDistance)
	if len(r.Edges) > 0 {
		sb.WriteString("MST edges:\n")
		for _, e := range r.Edges {
			fmt.Fprintf(&sb, "  %s - %s (%d km)\n", e.From, e.To, e.Distance)
		}
	}
	if !r.Spanning() {
		fmt.Fprintf(&sb, "Warning: graph is not connected (%d of %d cities covered, %d trees)\n",
			r.CoveredNodes, r.TotalNodes, r.Trees)
		if len(r.Unreached) > 0 {
			names := make([]string, len(r.Unreached))
			for i, n := range r.Unreached {
				names[i] = n.Name
			}
			fmt.Fprintf(&sb, "Unreached: %s\n", strings.Join(names, ", "))
		}
	}

	return sb.String()
}
