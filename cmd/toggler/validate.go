package main

import (
	"fmt"

	"github.com/aretw0/toggler"
	"github.com/aretw0/toggler/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the project for structural errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadFlagFile(cmd)
			if err != nil {
				return err
			}

			c, err := toggler.New()
			if err != nil {
				return err
			}
			if err := c.Validate(project); err != nil {
				for _, fe := range validator.FieldErrors(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %v\n", fe)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d toggles\n", project.Name, len(project.Toggles))
			return nil
		},
	}
}
