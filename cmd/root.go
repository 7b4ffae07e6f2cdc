package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/catalog"
	"github.com/abhisek/worksheetgen/internal/config"
	"github.com/abhisek/worksheetgen/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "worksheetgen",
	Short: "Worksheet prompts and printable sheets for teachers",
	Long: `worksheetgen builds a prompt describing a worksheet for an AI chat service,
then turns the JSON exercises the AI answers with into a practice sheet and a
matching solution sheet.

Run without a subcommand to open the interactive form.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog YAML file (overrides "+config.EnvCatalog+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, applies any of the --catalog, --out,
// --format and --lang flags the user set, and validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"catalog", &cfg.CatalogPath},
		{"out", &cfg.OutDir},
		{"format", &cfg.Format},
		{"lang", &cfg.Lang},
	}
	for _, o := range overrides {
		if f := cmd.Flags().Lookup(o.flag); f != nil && f.Changed {
			*o.dst = f.Value.String()
		}
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadCatalog returns the catalog named by cfg, or the embedded one.
func loadCatalog(cfg config.Config, log *logger.Logger) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
	}
	log.Debug("catalog loaded", "source", source, "subjects", len(cat.Subjects))
	return cat, nil
}

// newLogger builds the stderr logger for a command.
func newLogger(cmd *cobra.Command, cfg config.Config) (*logger.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logger.New(cfg.LogMode, verbose)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}

// readPayload reads a payload from a file, or from stdin when path is "-".
func readPayload(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read payload from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return data, nil
}
