package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/generate"
	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file|->",
	Short: "Show a sheet in the terminal without writing files",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Bool("solution", false, "Show the solution sheet instead of the practice sheet")
	previewCmd.Flags().String("lang", "", "Sheet language: de or en (default de)")
	previewCmd.Flags().Int("width", 0, "Wrap width (default: terminal width)")
	previewCmd.Flags().Bool("markdown", false, "Print Markdown instead of styled text")
}

func runPreview(cmd *cobra.Command, args []string) error {
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
	doc, err := generate.NewService(render.NewMarkdown(), log).Load(payload, false)
	if err != nil {
		return err
	}
	labels, err := worksheet.LabelsFor(cfg.Lang)
	if err != nil {
		return err
	}

	seq, solution := worksheet.New(labels).Build(doc)
	if showSolution, _ := cmd.Flags().GetBool("solution"); showSolution {
		seq = solution
	}

	if md, _ := cmd.Flags().GetBool("markdown"); md {
		fmt.Fprint(cmd.OutOrStdout(), render.MarkdownText(seq, ""))
		return nil
	}

	width, _ := cmd.Flags().GetInt("width")
	if width <= 0 {
		width = terminalWidth()
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Preview(seq, width))
	return nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return min(w, 100)
	}
	return 80
}
