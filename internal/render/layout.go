package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// A4 geometry in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 20.0

	footerSize = 8.0
	prefixGap  = 1.5
)

// surface is a paged drawing target measured in millimetres. The PDF and
// PNG renderers implement it so both paginate identically.
type surface interface {
	NewPage()
	SetFont(ts TextStyle, bold bool)
	TextWidth(s string) float64
	// Wrap breaks s into lines no wider than width with the current font.
	Wrap(s string, width float64) []string
	// DrawText draws s with its line box's top-left corner at (x, y).
	DrawText(x, y, lineHeight float64, s string)
	DrawMarker(m worksheet.Marker, x, y, size float64)
}

// layout walks a block sequence and places it on pages of a surface.
type layout struct {
	s      surface
	styles StyleSet
	footer func(page int) string

	y     float64
	pages int
}

func newLayout(s surface, styles StyleSet, sheetID string) *layout {
	return &layout{
		s:      s,
		styles: styles,
		footer: func(page int) string { return footerText(page, sheetID) },
	}
}

func (l *layout) run(seq worksheet.Sequence) int {
	l.newPage()
	for _, b := range seq.Blocks {
		l.block(b)
	}
	l.drawFooter()
	return l.pages
}

func (l *layout) newPage() {
	l.s.NewPage()
	l.pages++
	l.y = margin
}

func (l *layout) drawFooter() {
	ts := TextStyle{Size: footerSize, Italic: true, Color: "#969696"}
	l.s.SetFont(ts, false)
	text := l.footer(l.pages)
	x := (pageWidth - l.s.TextWidth(text)) / 2
	l.s.DrawText(x, pageHeight-margin/2-ts.LineHeight()/2, ts.LineHeight(), text)
}

// ensure starts a new page unless h more millimetres fit on this one.
func (l *layout) ensure(h float64) {
	if l.y+h <= pageHeight-margin {
		return
	}
	l.drawFooter()
	l.newPage()
}

func (l *layout) block(b worksheet.Block) {
	if b.Kind == worksheet.KindSpacer {
		l.y += b.Space
		return
	}

	ts := l.styles.Style(b.Style)
	lh := ts.LineHeight()
	if l.y > margin {
		l.y += ts.SpaceBefore
	}

	x := margin + float64(b.Indent)*l.styles.IndentStep
	width := pageWidth - margin - x

	var prefix string
	var prefixWidth float64
	markerSize := lh * 0.6

	switch {
	case b.Kind == worksheet.KindQuestion:
		prefix = fmt.Sprintf("%d.", b.Number)
	case b.Kind == worksheet.KindBullet && b.Marker != worksheet.MarkerNone:
		prefixWidth = markerSize + 2*prefixGap
	case b.Label != "":
		prefix = b.Label
	}
	if prefix != "" {
		l.s.SetFont(ts, true)
		prefixWidth = l.s.TextWidth(prefix) + prefixGap
	}

	l.s.SetFont(ts, ts.Bold)
	lines := l.s.Wrap(b.Text, width-prefixWidth)

	for i, line := range lines {
		l.ensure(lh)

		if i == 0 {
			switch {
			case prefix != "":
				l.s.SetFont(ts, true)
				l.s.DrawText(x, l.y, lh, prefix)
				l.s.SetFont(ts, ts.Bold)
			case prefixWidth > 0:
				l.s.DrawMarker(b.Marker, x+prefixGap, l.y+(lh-markerSize)/2, markerSize)
			}
		}

		lx := x + prefixWidth
		if ts.Center {
			lx = x + (width-l.s.TextWidth(line))/2
		}
		l.s.DrawText(lx, l.y, lh, line)
		l.y += lh
	}

	l.y += ts.SpaceAfter
}

// wrapText breaks s into lines no wider than width. Words longer than a
// line are split between characters. An empty s yields one empty line.
// The PDF surface falls back to it for text the core fonts cannot measure.
func wrapText(s string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var cur string
		for _, w := range words {
			candidate := w
			if cur != "" {
				candidate = cur + " " + w
			}
			if measure(candidate) <= width {
				cur = candidate
				continue
			}
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			for measure(w) > width && utf8.RuneCountInString(w) > 1 {
				head, tail := splitToWidth(w, width, measure)
				lines = append(lines, head)
				w = tail
			}
			cur = w
		}
		lines = append(lines, cur)
	}
	return lines
}

// fitLines splits every line wider than width between characters.
func fitLines(lines []string, width float64, measure func(string) float64) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		for measure(line) > width && utf8.RuneCountInString(line) > 1 {
			head, tail := splitToWidth(line, width, measure)
			out = append(out, head)
			line = tail
		}
		out = append(out, line)
	}
	return out
}

// splitToWidth returns the longest prefix of w that fits, at least one rune.
func splitToWidth(w string, width float64, measure func(string) float64) (string, string) {
	runes := []rune(w)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
