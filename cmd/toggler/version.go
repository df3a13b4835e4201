package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/toggler"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of toggler",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "toggler version %s\n", strings.TrimSpace(toggler.Version))
		},
	}
}
