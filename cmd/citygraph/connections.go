package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/format"
	"github.com/spf13/cobra"
)

// ConnectionsResponse is the JSON form of a city's connections.
type ConnectionsResponse struct {
	City        string         `json:"city"`
	Connections []EdgeResponse `json:"connections"`
}

func newConnectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connections <city>",
		Short: "List the direct connections of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city, views, err := a.sess.Connections(args[0])
			if errors.Is(err, core.ErrNodeNotFound) {
				return withCode(ExitNotFound, fmt.Errorf("city not found: %s", args[0]))
			}
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), ConnectionsResponse{
					City:        city.Name,
					Connections: toEdgeResponses(views),
				})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), format.Connections(city, views))
			return err
		},
	}
}
