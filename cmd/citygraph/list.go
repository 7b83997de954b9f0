package main

import (
	"fmt"

	"github.com/katalvlaran/citygraph/format"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every loaded distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.sess.Graph()
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), toEdgeResponses(g.Edges()))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), format.Edges(g.Edges()))
			return err
		},
	}
}
