package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/exercise"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the exercise payload",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := exercise.SchemaJSON()
		if err != nil {
			return fmt.Errorf("encode schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
