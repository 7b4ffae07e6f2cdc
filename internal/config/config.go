package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// Environment variables read by FromEnv.
const (
	EnvOutDir  = "WORKSHEETGEN_OUT_DIR"
	EnvFormat  = "WORKSHEETGEN_FORMAT"
	EnvLang    = "WORKSHEETGEN_LANG"
	EnvCatalog = "WORKSHEETGEN_CATALOG"
	EnvLogMode = "WORKSHEETGEN_LOG_MODE"
)

// Log modes accepted by logger.New.
var LogModes = []string{"dev", "prod", "off"}

// Config holds the settings shared by all commands. Command-line flags
// override it.
type Config struct {
	// OutDir is where rendered documents are written. Default: ".".
	OutDir string

	// Format selects the renderer: "pdf", "png" or "md". Default: "pdf".
	Format string

	// Lang selects the sheet labels: "de" or "en". Default: "de".
	Lang string

	// CatalogPath points to a catalog YAML file. Empty uses the embedded one.
	CatalogPath string

	// LogMode is "dev" (console), "prod" (JSON) or "off". Default: "dev".
	LogMode string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutDir:  ".",
		Format:  render.FormatPDF,
		Lang:    "de",
		LogMode: "dev",
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvLang); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvLogMode); v != "" {
		cfg.LogMode = v
	}

	return cfg.Normalize()
}

// aliases map accepted spellings to the canonical format and log mode names.
var aliases = map[string]string{
	"markdown":    render.FormatMarkdown,
	"none":        "off",
	"production":  "prod",
	"development": "dev",
}

// Normalize lowercases and trims Format, Lang and LogMode and resolves
// their aliases.
func (c Config) Normalize() Config {
	canon := func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		if a, ok := aliases[v]; ok {
			return a
		}
		return v
	}
	c.Format = canon(c.Format)
	c.Lang = canon(c.Lang)
	c.LogMode = canon(c.LogMode)
	return c
}

// Validate rejects unknown formats, languages and log modes.
func (c Config) Validate() error {
	if c.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if !slices.Contains(render.Formats, c.Format) {
		return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(render.Formats, ", "))
	}
	if !slices.Contains(worksheet.Languages, c.Lang) {
		return fmt.Errorf("unknown language %q (want one of %s)", c.Lang, strings.Join(worksheet.Languages, ", "))
	}
	if !slices.Contains(LogModes, c.LogMode) {
		return fmt.Errorf("unknown log mode %q (want one of %s)", c.LogMode, strings.Join(LogModes, ", "))
	}
	return nil
}
