package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <cityA> <cityB>",
		Short: "Show the direct distance between two cities",
		Long: `Show the distance of the direct connection between two cities.
Names are matched case-insensitively and in either order. Cities joined
only through other cities have no direct distance.

Example:
  citygraph distance berlin Hamburg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok, err := a.sess.FindDistance(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return withCode(ExitNotFound,
					fmt.Errorf("no distance found between %s and %s", args[0], args[1]))
			}
			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), toEdgeResponse(e))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Distance between %s and %s: %d km\n",
				e.From, e.To, e.Distance)
			return err
		},
	}
}
