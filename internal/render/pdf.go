package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// PDF renders A4 documents with the core Helvetica font.
type PDF struct {
	// Creator is written to the document properties.
	Creator string
}

// NewPDF creates a PDF renderer.
func NewPDF() *PDF {
	return &PDF{Creator: "worksheetgen"}
}

func (r *PDF) Format() string    { return FormatPDF }
func (r *PDF) Extension() string { return ".pdf" }

// Render writes dest.Base + ".pdf".
func (r *PDF) Render(seq worksheet.Sequence, styles StyleSet, dest Destination) (*Result, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(false, margin)
	doc.SetTitle(seq.Title(), true)
	doc.SetCreator(r.Creator, true)
	if dest.SheetID != "" {
		doc.SetSubject(dest.SheetID, true)
	}

	s := &pdfSurface{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	pages := newLayout(s, styles, dest.SheetID).run(seq)

	path := dest.Base + r.Extension()
	if err := doc.OutputFileAndClose(path); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return &Result{Paths: []string{path}, Pages: pages}, nil
}

type pdfSurface struct {
	doc *fpdf.Fpdf
	// tr maps UTF-8 to the cp1252 encoding of the core fonts.
	tr func(string) string
}

func (s *pdfSurface) NewPage() {
	s.doc.AddPage()
}

func (s *pdfSurface) SetFont(ts TextStyle, bold bool) {
	style := ""
	if bold {
		style += "B"
	}
	if ts.Italic {
		style += "I"
	}
	s.doc.SetFont("Helvetica", style, ts.Size)
	s.doc.SetTextColor(ts.RGB())
}

func (s *pdfSurface) TextWidth(text string) float64 {
	return s.doc.GetStringWidth(s.tr(text))
}

// Wrap uses fpdf's line splitter, which indexes the core-font width
// table by rune, so only Latin-1 text goes through it.
func (s *pdfSurface) Wrap(text string, width float64) []string {
	if !latin1(text) {
		return wrapText(text, width, s.TextWidth)
	}
	s.doc.SetCellMargin(0)
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		split := s.doc.SplitText(para, width)
		if len(split) == 0 {
			split = []string{""}
		}
		lines = append(lines, split...)
	}
	return lines
}

func latin1(s string) bool {
	for _, r := range s {
		if r > unicode.MaxLatin1 {
			return false
		}
	}
	return true
}

func (s *pdfSurface) DrawText(x, y, lineHeight float64, text string) {
	if text == "" {
		return
	}
	s.doc.SetXY(x, y)
	s.doc.SetCellMargin(0)
	s.doc.CellFormat(s.TextWidth(text), lineHeight, s.tr(text), "", 0, "L", false, 0, "")
}

func (s *pdfSurface) DrawMarker(m worksheet.Marker, x, y, size float64) {
	s.doc.SetDrawColor(0, 0, 0)
	s.doc.SetLineWidth(0.25)

	switch m {
	case worksheet.MarkerDot:
		s.doc.SetFillColor(0, 0, 0)
		s.doc.Circle(x+size/2, y+size/2, size/5, "F")
	case worksheet.MarkerUnchecked:
		s.doc.Rect(x, y, size, size, "D")
	case worksheet.MarkerChecked:
		s.doc.Rect(x, y, size, size, "D")
		s.doc.SetDrawColor(0, 102, 0)
		s.doc.SetLineWidth(0.5)
		s.doc.Line(x+size*0.2, y+size*0.55, x+size*0.42, y+size*0.8)
		s.doc.Line(x+size*0.42, y+size*0.8, x+size*0.85, y+size*0.2)
	}
}
