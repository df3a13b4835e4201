package main

import (
	"fmt"

	"github.com/aretw0/toggler/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the compiled controller as a Mermaid diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compileFlagFile(cmd)
			if err != nil {
				return err
			}

			var overlay *graph.GraphOverlay
			if defaults, _ := cmd.Flags().GetBool("defaults"); defaults {
				overlay = graph.DefaultsOverlay(result.Graph)
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(result.Graph, overlay))
			return nil
		},
	}
	cmd.Flags().Bool("defaults", false, "Highlight the default state of every layer")
	return cmd
}
