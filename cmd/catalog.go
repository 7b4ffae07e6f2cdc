package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List grades, subjects and exercise types",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		out := cmd.OutOrStdout()
		subject, _ := cmd.Flags().GetString("subject")
		if subject != "" {
			if !cat.HasSubject(subject) {
				fmt.Fprintf(out, "%q is not in the catalog; default types:\n", subject)
			}
			for _, t := range cat.TypesFor(subject) {
				fmt.Fprintf(out, "%-26s  %s\n", t, cat.Describe(t))
			}
			return nil
		}

		fmt.Fprintln(out, "Grades")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		fmt.Fprintln(out, strings.Join(cat.Grades, ", "))

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-24s  %s\n", "Subject", "Exercise types")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, s := range cat.Subjects {
			fmt.Fprintf(out, "%-24s  %s\n", s.Name, strings.Join(s.ExerciseTypes, ", "))
		}

		q := cat.Questions
		fmt.Fprintf(out, "\nQuestions per exercise: %d (%d-%d)\n", q.Default, q.Min, q.Max)
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("subject", "", "Only list the exercise types of this subject")
}
