package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/generate"
	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|->",
	Short: "Check an AI response without rendering it",
	Long: `Check that a saved AI response is a usable exercise payload. Code fences and
text around the JSON are ignored. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Also check the payload against the JSON schema")
}

func runValidate(cmd *cobra.Command, args []string) error {
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
	strict, _ := cmd.Flags().GetBool("strict")

	// Load never renders, so any renderer will do.
	svc := generate.NewService(render.NewMarkdown(), log)
	doc, err := svc.Load(payload, strict)
	if err != nil {
		return err
	}

	labels, err := worksheet.LabelsFor(cfg.Lang)
	if err != nil {
		return err
	}
	groups := worksheet.GroupBySubtopic(doc.Exercises, labels.General)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d exercises found (%s, %s, %s)\n",
		doc.Len(), doc.Metadata.Topic, doc.Metadata.Grade, doc.Metadata.Subject)
	for _, g := range groups {
		fmt.Fprintf(out, "  %-24s %d\n", g.Label, len(g.Records))
	}
	return nil
}
