package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/generate"
	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

var renderCmd = &cobra.Command{
	Use:   "render <file|->",
	Short: "Write the practice and solution sheets for an AI response",
	Long: `Validate a saved AI response and write two documents: a practice sheet
without answers and a solution sheet with answers and explanations. Nothing is
written when the payload is rejected. Use "-" to read from stdin.`,
	Example: `  worksheetgen render antwort.json --out blaetter --format pdf`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRender,
}

func init() {
	renderCmd.Flags().StringP("out", "o", "", "Output directory (overrides WORKSHEETGEN_OUT_DIR, default \".\")")
	renderCmd.Flags().String("prefix", "", "File name prefix (default derived from the topic)")
	renderCmd.Flags().StringP("format", "f", "", "Output format: pdf, png or md (default pdf)")
	renderCmd.Flags().String("lang", "", "Sheet language: de or en (default de)")
	renderCmd.Flags().Bool("strict", false, "Also check the payload against the JSON schema")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	payload, err := readPayload(cmd, args[0])
	if err != nil {
		return err
	}

	renderer, err := render.ForFormat(cfg.Format)
	if err != nil {
		return err
	}
	labels, err := worksheet.LabelsFor(cfg.Lang)
	if err != nil {
		return err
	}

	opts := generate.DefaultOptions()
	opts.OutDir = cfg.OutDir
	opts.Labels = labels
	opts.Prefix, _ = cmd.Flags().GetString("prefix")
	opts.Strict, _ = cmd.Flags().GetBool("strict")

	out, err := generate.NewService(renderer, log).Generate(payload, opts)
	if err != nil {
		var rerr *generate.RenderError
		if errors.As(err, &rerr) && len(rerr.Completed) > 0 {
			log.Warn("partial output left on disk", "paths", rerr.Completed)
		}
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d exercises rendered (sheet %s)\n", out.Document.Len(), out.SheetID)
	fmt.Fprintf(w, "Practice: %s\n", joinPaths(out.Practice.Paths))
	fmt.Fprintf(w, "Solution: %s\n", joinPaths(out.Solution.Paths))
	return nil
}

func joinPaths(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%s (+%d pages)", paths[0], len(paths)-1)
}
