package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/exercise"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a sample exercise payload",
	Long: `Print a small payload with structured and flat exercises. Pipe it into
render or preview to try the tool without an AI response:

  worksheetgen sample | worksheetgen preview --solution -`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), exercise.SamplePayload)
	},
}
