package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the project into an artifact",
		Long:  `Compiles the project and writes the artifact as JSON. With --store the artifact is saved and its ID printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compileFlagFile(cmd)
			if err != nil {
				return err
			}
			artifact := result.Artifact()

			if spec, _ := cmd.Flags().GetString("store"); spec != "" {
				logger, err := newLogger(cmd)
				if err != nil {
					return err
				}
				store, err := openStore(spec, logger)
				if err != nil {
					return err
				}
				if err := store.Save(cmd.Context(), artifact); err != nil {
					return fmt.Errorf("failed to store artifact: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), artifact.ID)
				return nil
			}

			data, err := json.MarshalIndent(artifact, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal artifact: %w", err)
			}
			data = append(data, '\n')

			out, _ := cmd.Flags().GetString("out")
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0644)
		},
	}
	cmd.Flags().StringP("out", "o", "-", "Artifact output path (- for stdout)")
	cmd.Flags().String("store", "", "Save into a store: a directory or a redis:// URL")
	return cmd
}
