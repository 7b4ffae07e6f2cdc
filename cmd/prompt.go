package cmd

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/prompt"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the AI prompt for a worksheet",
	Long: `Build the prompt that asks an AI chat service for worksheet exercises in the
JSON format the render command accepts.

Without --types every exercise type of the subject is requested.`,
	Example: `  worksheetgen prompt --grade "4. Klasse" --subject Deutsch --topic Nomen \
    --subtopics "Plural, Artikel" --types "Multiple Choice" --count 5 --copy`,
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().String("grade", "", "Grade, e.g. \"4. Klasse\" (required)")
	promptCmd.Flags().String("subject", "", "Subject, e.g. Deutsch (required)")
	promptCmd.Flags().String("topic", "", "Main topic (required)")
	promptCmd.Flags().String("subtopics", "", "Comma-separated sub-topics (default: the topic)")
	promptCmd.Flags().StringSlice("types", nil, "Exercise types (default: all types of the subject)")
	promptCmd.Flags().Int("count", 0, "Questions per exercise (default from the catalog)")
	promptCmd.Flags().Bool("copy", false, "Also copy the prompt to the clipboard")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	p := prompt.Params{}
	p.Grade, _ = cmd.Flags().GetString("grade")
	p.Subject, _ = cmd.Flags().GetString("subject")
	p.Topic, _ = cmd.Flags().GetString("topic")
	subtopics, _ := cmd.Flags().GetString("subtopics")
	p.Subtopics = prompt.ParseSubtopics(subtopics)
	p.ExerciseTypes, _ = cmd.Flags().GetStringSlice("types")
	p.Count, _ = cmd.Flags().GetInt("count")

	if len(p.ExerciseTypes) == 0 && p.Subject != "" {
		p.ExerciseTypes = cat.TypesFor(p.Subject)
	}
	if !cmd.Flags().Changed("count") {
		p.Count = cat.Questions.Default
	}

	if err := p.Validate(cat); err != nil {
		var perr *prompt.ParamError
		if errors.As(err, &perr) {
			return fmt.Errorf("invalid --%s: %s", flagFor(perr.Field), perr.Message)
		}
		return err
	}
	if !cat.HasSubject(p.Subject) {
		log.Warn("subject not in catalog, using default exercise types", "subject", p.Subject)
	}

	text := prompt.Build(p, cat)
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := writeClipboard(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		d := prompt.Distribute(p)
		fmt.Fprintf(cmd.ErrOrStderr(), "Prompt copied (%d exercises, %d questions).\n", d.Exercises, d.Questions)
	}
	return nil
}

// flagFor maps a form field to its command-line flag.
func flagFor(field string) string {
	switch field {
	case prompt.FieldExerciseTypes:
		return "types"
	default:
		return field
	}
}
