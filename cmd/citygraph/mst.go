package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/format"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	"github.com/spf13/cobra"
)

// MSTResponse is the JSON form of a spanning tree result.
type MSTResponse struct {
	Method        string         `json:"method"`
	TotalDistance int64          `json:"total_distance_km"`
	Edges         []EdgeResponse `json:"edges"`
	Spanning      bool           `json:"spanning"`
	CoveredNodes  int            `json:"covered_nodes"`
	TotalNodes    int            `json:"total_nodes"`
	Unreached     []string       `json:"unreached,omitempty"`
}

func newMSTCmd(a *app) *cobra.Command {
	var method, root string

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute the minimum spanning tree",
		Long: `Compute the minimum spanning tree of the loaded network and print its
total distance and edges. On a disconnected network the tree covers only
the component of the start city; the cities left out are listed.

Examples:
  citygraph mst
  citygraph mst --method kruskal
  citygraph mst --root Hamburg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("method") {
				if !prim_kruskal.ValidMethod(method) {
					return withCode(ExitConfigError,
						fmt.Errorf("%w: %q", prim_kruskal.ErrUnknownMethod, method))
				}
				a.cfg.MSTMethod = method
			}
			if cmd.Flags().Changed("root") {
				a.cfg.Root = root
			}

			res, err := a.computeMST(cmd)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), MSTResponse{
					Method:        a.cfg.MSTMethod,
					TotalDistance: res.TotalDistance,
					Edges:         toEdgeResponses(res.Edges),
					Spanning:      res.Spanning(),
					CoveredNodes:  res.CoveredNodes,
					TotalNodes:    res.TotalNodes,
					Unreached:     nodeNames(res.Unreached),
				})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), format.MST(res))
			return err
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "algorithm: prim or kruskal")
	cmd.Flags().StringVar(&root, "root", "", "start city for prim (default: first city loaded)")
	return cmd
}

// computeMST runs the configured algorithm on the session graph.
func (a *app) computeMST(cmd *cobra.Command) (prim_kruskal.Result, error) {
	res, err := a.sess.MST(
		prim_kruskal.WithMethod(a.cfg.MSTMethod),
		prim_kruskal.WithRoot(a.cfg.Root),
		prim_kruskal.WithContext(cmd.Context()),
	)
	if errors.Is(err, core.ErrNodeNotFound) {
		return res, withCode(ExitNotFound, fmt.Errorf("root city not found: %s", a.cfg.Root))
	}
	return res, err
}
