package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List groups of cities connected to each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := a.sess.Components()
			if err != nil {
				return err
			}
			if a.jsonOutput {
				groups := make([][]string, len(comps))
				for i, c := range comps {
					groups[i] = nodeNames(c)
				}
				return outputJSON(cmd.OutOrStdout(), groups)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d component(s)\n", len(comps))
			for i, c := range comps {
				fmt.Fprintf(out, "%d: %s\n", i+1, strings.Join(nodeNames(c), ", "))
			}
			return nil
		},
	}
}
