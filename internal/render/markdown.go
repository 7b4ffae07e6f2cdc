package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// Markdown renders a plain Markdown document. Styles are not used beyond
// block kinds.
type Markdown struct{}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

func (r *Markdown) Format() string    { return FormatMarkdown }
func (r *Markdown) Extension() string { return ".md" }

// Render writes dest.Base + ".md".
func (r *Markdown) Render(seq worksheet.Sequence, _ StyleSet, dest Destination) (*Result, error) {
	path := dest.Base + r.Extension()
	if err := os.WriteFile(path, []byte(MarkdownText(seq, dest.SheetID)), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return &Result{Paths: []string{path}, Pages: 1}, nil
}

// MarkdownText returns the Markdown form of a sequence.
func MarkdownText(seq worksheet.Sequence, sheetID string) string {
	var sb strings.Builder
	for _, b := range seq.Blocks {
		indent := strings.Repeat("  ", max(b.Indent-1, 0))

		switch b.Kind {
		case worksheet.KindTitle:
			fmt.Fprintf(&sb, "# %s\n\n", b.Text)
		case worksheet.KindSubtitleHeader:
			fmt.Fprintf(&sb, "## %s\n\n", b.Text)
		case worksheet.KindFieldLine:
			fmt.Fprintf(&sb, "**%s** %s\n\n", b.Label, escapeUnderscores(b.Text))
		case worksheet.KindQuestion:
			fmt.Fprintf(&sb, "**%d.** %s\n\n", b.Number, b.Text)
		case worksheet.KindBullet:
			fmt.Fprintf(&sb, "%s- %s%s\n", indent, markdownMarker(b.Marker), b.Text)
		case worksheet.KindAnswer:
			fmt.Fprintf(&sb, "%s- **%s** %s\n", indent, b.Label, b.Text)
		case worksheet.KindExplanation:
			fmt.Fprintf(&sb, "%s- *%s %s*\n", indent, b.Label, b.Text)
		case worksheet.KindSpacer:
			// Markdown has no vertical spacing; end any open list.
			if !strings.HasSuffix(sb.String(), "\n\n") && sb.Len() > 0 {
				sb.WriteString("\n")
			}
		}
	}
	if sheetID != "" {
		fmt.Fprintf(&sb, "---\n\n`%s`\n", sheetID)
	}
	return sb.String()
}

func markdownMarker(m worksheet.Marker) string {
	switch m {
	case worksheet.MarkerUnchecked:
		return "[ ] "
	case worksheet.MarkerChecked:
		return "[x] "
	}
	return ""
}

func escapeUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}
