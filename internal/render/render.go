package render

import (
	"fmt"
	"strings"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// Output formats.
const (
	FormatPDF      = "pdf"
	FormatPNG      = "png"
	FormatMarkdown = "md"
)

// Formats lists the accepted format names, default first.
var Formats = []string{FormatPDF, FormatPNG, FormatMarkdown}

// Destination says where a document goes.
type Destination struct {
	// Base is the output path without extension, e.g.
	// "out/Nomen_practice_20251017_093000".
	Base string

	// SheetID is printed in page footers so a printed practice sheet can
	// be matched to its solution sheet.
	SheetID string
}

// Result describes what a renderer wrote.
type Result struct {
	Paths []string
	Pages int
}

// Renderer writes one block sequence to disk.
type Renderer interface {
	Format() string
	Extension() string
	Render(seq worksheet.Sequence, styles StyleSet, dest Destination) (*Result, error)
}

// ForFormat returns the renderer for a format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatPDF:
		return NewPDF(), nil
	case FormatPNG:
		return NewPNG(), nil
	case FormatMarkdown, "markdown":
		return NewMarkdown(), nil
	}
	return nil, fmt.Errorf("unsupported format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

func footerText(page int, sheetID string) string {
	if sheetID == "" {
		return fmt.Sprintf("%d", page)
	}
	return fmt.Sprintf("%d  ·  %s", page, sheetID)
}
