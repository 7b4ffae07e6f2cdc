package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetgen/internal/app"
	"github.com/abhisek/worksheetgen/internal/generate"
	"github.com/abhisek/worksheetgen/internal/logger"
	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// runApp builds the services from the configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stderr belongs to the terminal UI while it runs.
	log := logger.Nop()

	cat, err := loadCatalog(cfg, log)
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

	genOpts := generate.DefaultOptions()
	genOpts.OutDir = cfg.OutDir
	genOpts.Labels = labels

	return app.Run(app.Options{
		Catalog:  cat,
		Service:  generate.NewService(renderer, log),
		Generate: genOpts,
		Format:   renderer.Format(),
	})
}
