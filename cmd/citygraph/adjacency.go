package main

import (
	"fmt"

	"github.com/katalvlaran/citygraph/format"
	"github.com/spf13/cobra"
)

func newAdjacencyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency",
		Short: "Print the adjacency list with node and edge totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.sess.Graph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, format.AdjacencyList(g)); err != nil {
				return err
			}
			_, err = fmt.Fprint(out, "\n", format.Summary(g))
			return err
		},
	}
}
