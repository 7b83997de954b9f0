// Package citygraph is an in-memory toolkit for networks of cities joined
// by road distances: load them, query them, and find the cheapest way to
// connect them all.
//
// What is in the box?
//
//	• Graph model: cities as nodes, undirected km-weighted connections,
//	  safe for concurrent readers
//	• Loader: tolerant "CityA,CityB,Distance" line reader with skip reports
//	• Queries: direct distance and per-city connections, case-insensitive
//	• Minimum spanning trees: Prim (primary) and Kruskal (cross-check)
//	• Traversal: BFS reachability and connected components
//	• Text rendering, Prometheus metrics and a cobra CLI
//
// Packages:
//
//	core/         — Graph, Node, Edge and the name-based queries
//	loader/       — builds a Graph from a line-oriented distance list
//	prim_kruskal/ — MST computation with partial-coverage reporting
//	bfs/          — hop-count traversal and components
//	format/       — adjacency list, edge table and MST renderers
//	session/      — the currently loaded graph, swapped atomically on reload
//	config/       — YAML, .env and CITYGRAPH_* settings
//	metrics/      — Prometheus collectors for loads and MST runs
//	cmd/citygraph — command-line front end
//
// Quick example:
//
//	A,B,5
//	B,C,3       ──►   A──5──B──3──C     MST total: 8 km
//	A,C,10
//
//	go install github.com/katalvlaran/citygraph/cmd/citygraph@latest
package citygraph
