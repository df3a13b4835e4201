package main

import (
	"fmt"
	"os"

	"github.com/aretw0/toggler/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise the compiled project",
		Long:  `Prints a markdown report of toggles, exclusive groups and menu entries. On a terminal the report is rendered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compileFlagFile(cmd)
			if err != nil {
				return err
			}
			md := tui.Report(result.Project, result.Summary, result.Graph, result.Menu)

			raw, _ := cmd.Flags().GetBool("raw")
			f, isFile := cmd.OutOrStdout().(*os.File)
			if raw || !isFile || !term.IsTerminal(int(f.Fd())) {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			width := 100
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				width = w
			}
			render, err := tui.NewRenderer(width)
			if err != nil {
				return err
			}
			out, err := render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown even on a terminal")
	return cmd
}
