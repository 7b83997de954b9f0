package main

import (
	"github.com/spf13/cobra"
)

func newMetricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Load the data, compute the MST and print Prometheus metrics",
		Long: `Run a load and an MST computation with the configured settings, then
print the collected metrics in the Prometheus text exposition format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.computeMST(cmd); err != nil {
				return err
			}
			return a.recorder.WriteText(cmd.OutOrStdout())
		},
	}
}
