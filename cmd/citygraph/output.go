package main

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/citygraph/core"
)

// EdgeResponse is the JSON form of a connection.
type EdgeResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int64  `json:"distance_km"`
}

func toEdgeResponse(e core.Edge) EdgeResponse {
	return EdgeResponse{From: e.From.Name, To: e.To.Name, Distance: e.Distance}
}

func toEdgeResponses(edges []core.Edge) []EdgeResponse {
	out := make([]EdgeResponse, len(edges))
	for i, e := range edges {
		out[i] = toEdgeResponse(e)
	}
	return out
}

func nodeNames(nodes []core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
