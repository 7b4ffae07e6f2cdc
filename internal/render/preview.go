package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/ui/theme"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// Preview renders a sequence as styled terminal text, wrapped to width.
// Spacer heights are scaled to blank lines.
func Preview(seq worksheet.Sequence, width int) string {
	if width <= 0 {
		width = 80
	}

	var sb strings.Builder
	for _, b := range seq.Blocks {
		if b.Kind == worksheet.KindSpacer {
			if b.Space >= 8 {
				sb.WriteString("\n")
			}
			continue
		}

		pad := b.Indent * 3
		style := previewStyle(b).Width(max(width-pad, 10)).PaddingLeft(pad)
		sb.WriteString(style.Render(previewText(b)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func previewStyle(b worksheet.Block) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(theme.Text)
	switch b.Style {
	case worksheet.StyleTitle:
		return s.Foreground(theme.Primary).Bold(true).Align(lipgloss.Center).MarginBottom(1)
	case worksheet.StyleSubtitle:
		return s.Foreground(theme.Secondary).Bold(true).Underline(true).MarginTop(1)
	case worksheet.StyleAnswer:
		return s.Foreground(theme.Success).Bold(true)
	case worksheet.StyleExplanation:
		return s.Foreground(theme.TextDim).Italic(true)
	}
	return s
}

func previewText(b worksheet.Block) string {
	switch b.Kind {
	case worksheet.KindQuestion:
		return fmt.Sprintf("%d. %s", b.Number, b.Text)
	case worksheet.KindBullet:
		return previewMarker(b.Marker) + b.Text
	}
	if b.Label != "" {
		return b.Label + " " + b.Text
	}
	return b.Text
}

func previewMarker(m worksheet.Marker) string {
	switch m {
	case worksheet.MarkerDot:
		return "• "
	case worksheet.MarkerUnchecked:
		return "☐ "
	case worksheet.MarkerChecked:
		return "✓ "
	}
	return ""
}
