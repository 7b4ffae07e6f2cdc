package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// ptToMM converts typographic points to millimetres.
const ptToMM = 25.4 / 72

// TextStyle describes how one style tag is drawn.
type TextStyle struct {
	Size   float64 // points
	Bold   bool
	Italic bool
	Color  string // hex, "#RRGGBB"
	Center bool

	SpaceBefore float64 // mm
	SpaceAfter  float64 // mm
}

// LineHeight returns the height of one text line in millimetres.
func (ts TextStyle) LineHeight() float64 {
	return ts.Size * ptToMM * 1.25
}

// RGB returns the colour components. Invalid colours render black.
func (ts TextStyle) RGB() (r, g, b int) {
	r, g, b, err := parseHex(ts.Color)
	if err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

// StyleSet maps every style tag to a TextStyle.
type StyleSet struct {
	Styles map[worksheet.Style]TextStyle

	// IndentStep is the left offset per block indent level, in mm.
	IndentStep float64
}

// DefaultStyles returns the classic worksheet look.
func DefaultStyles() StyleSet {
	return StyleSet{
		IndentStep: 7,
		Styles: map[worksheet.Style]TextStyle{
			worksheet.StyleTitle:       {Size: 16, Bold: true, Color: "#333333", Center: true, SpaceAfter: 6},
			worksheet.StyleSubtitle:    {Size: 14, Bold: true, Color: "#555555", SpaceBefore: 5, SpaceAfter: 4},
			worksheet.StyleQuestion:    {Size: 12, Color: "#000000", SpaceAfter: 2},
			worksheet.StyleAnswer:      {Size: 11, Bold: true, Color: "#006600", SpaceAfter: 1.5},
			worksheet.StyleExplanation: {Size: 10, Italic: true, Color: "#666666", SpaceAfter: 3},
			worksheet.StyleNormal:      {Size: 10, Color: "#000000", SpaceAfter: 1},
		},
	}
}

// Style returns the TextStyle for a tag, falling back to StyleNormal.
func (s StyleSet) Style(tag worksheet.Style) TextStyle {
	if ts, ok := s.Styles[tag]; ok {
		return ts
	}
	if ts, ok := s.Styles[worksheet.StyleNormal]; ok {
		return ts
	}
	return TextStyle{Size: 10, Color: "#000000"}
}

// Validate checks sizes and colours.
func (s StyleSet) Validate() error {
	for tag, ts := range s.Styles {
		if ts.Size <= 0 {
			return fmt.Errorf("style %q: size must be positive", tag)
		}
		if _, _, _, err := parseHex(ts.Color); err != nil {
			return fmt.Errorf("style %q: %w", tag, err)
		}
	}
	if s.IndentStep < 0 {
		return fmt.Errorf("indent step must not be negative")
	}
	return nil
}

func parseHex(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", s)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}
