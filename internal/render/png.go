package render

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// PNG renders one image per A4 page using the Go fonts.
type PNG struct {
	DPI float64
}

// NewPNG creates a PNG renderer at 150 dpi.
func NewPNG() *PNG {
	return &PNG{DPI: 150}
}

func (r *PNG) Format() string    { return FormatPNG }
func (r *PNG) Extension() string { return ".png" }

// Render writes dest.Base + "_pNN.png" for every page.
func (r *PNG) Render(seq worksheet.Sequence, styles StyleSet, dest Destination) (*Result, error) {
	s, err := newPNGSurface(r.DPI)
	if err != nil {
		return nil, err
	}
	pages := newLayout(s, styles, dest.SheetID).run(seq)

	res := &Result{Pages: pages}
	for i, dc := range s.pages {
		path := fmt.Sprintf("%s_p%02d%s", dest.Base, i+1, r.Extension())
		if err := dc.SavePNG(path); err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}
		res.Paths = append(res.Paths, path)
	}
	return res, nil
}

type fontKey struct {
	bold, italic bool
	size         float64
}

type pngSurface struct {
	dpi   float64
	pxMM  float64
	fonts map[[2]bool]*truetype.Font
	faces map[fontKey]font.Face

	pages []*gg.Context
	dc    *gg.Context
}

func newPNGSurface(dpi float64) (*pngSurface, error) {
	s := &pngSurface{
		dpi:   dpi,
		pxMM:  dpi / 25.4,
		fonts: make(map[[2]bool]*truetype.Font),
		faces: make(map[fontKey]font.Face),
	}
	for key, ttf := range map[[2]bool][]byte{
		{false, false}: goregular.TTF,
		{true, false}:  gobold.TTF,
		{false, true}:  goitalic.TTF,
		{true, true}:   gobolditalic.TTF,
	} {
		f, err := truetype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		s.fonts[key] = f
	}
	return s, nil
}

func (s *pngSurface) px(mm float64) float64 {
	return mm * s.pxMM
}

func (s *pngSurface) NewPage() {
	dc := gg.NewContext(int(s.px(pageWidth)), int(s.px(pageHeight)))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	s.pages = append(s.pages, dc)
	s.dc = dc
}

func (s *pngSurface) SetFont(ts TextStyle, bold bool) {
	key := fontKey{bold: bold, italic: ts.Italic, size: ts.Size}
	face, ok := s.faces[key]
	if !ok {
		face = truetype.NewFace(s.fonts[[2]bool{bold, ts.Italic}], &truetype.Options{
			Size:    ts.Size,
			DPI:     s.dpi,
			Hinting: font.HintingFull,
		})
		s.faces[key] = face
	}
	s.dc.SetFontFace(face)
	r, g, b := ts.RGB()
	s.dc.SetRGB255(r, g, b)
}

func (s *pngSurface) TextWidth(text string) float64 {
	w, _ := s.dc.MeasureString(text)
	return w / s.pxMM
}

// Wrap breaks at spaces with gg's word wrapper, then splits words that
// are still too wide.
func (s *pngSurface) Wrap(text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := s.dc.WordWrap(para, s.px(width))
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return fitLines(lines, width, s.TextWidth)
}

func (s *pngSurface) DrawText(x, y, lineHeight float64, text string) {
	s.dc.DrawStringAnchored(text, s.px(x), s.px(y+lineHeight/2), 0, 0.35)
}

func (s *pngSurface) DrawMarker(m worksheet.Marker, x, y, size float64) {
	px, py, ps := s.px(x), s.px(y), s.px(size)

	switch m {
	case worksheet.MarkerDot:
		s.dc.SetRGB(0, 0, 0)
		s.dc.DrawCircle(px+ps/2, py+ps/2, ps/5)
		s.dc.Fill()
	case worksheet.MarkerUnchecked:
		s.drawBox(px, py, ps)
	case worksheet.MarkerChecked:
		s.drawBox(px, py, ps)
		s.dc.SetRGB255(0, 102, 0)
		s.dc.SetLineWidth(s.px(0.5))
		s.dc.MoveTo(px+ps*0.2, py+ps*0.55)
		s.dc.LineTo(px+ps*0.42, py+ps*0.8)
		s.dc.LineTo(px+ps*0.85, py+ps*0.2)
		s.dc.Stroke()
	}
}

func (s *pngSurface) drawBox(px, py, ps float64) {
	s.dc.SetRGB(0, 0, 0)
	s.dc.SetLineWidth(s.px(0.25))
	s.dc.DrawRectangle(px, py, ps, ps)
	s.dc.Stroke()
}
