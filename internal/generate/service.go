package generate

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/worksheetgen/internal/exercise"
	"github.com/abhisek/worksheetgen/internal/logger"
	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// Options control one generation run.
type Options struct {
	// OutDir is created if missing.
	OutDir string

	// Prefix starts both file names. Empty derives it from the topic.
	Prefix string

	// Strict adds the JSON schema check before validation.
	Strict bool

	Labels worksheet.Labels
	Styles render.StyleSet
}

// DefaultOptions writes German PDF-style sheets to the working directory.
func DefaultOptions() Options {
	return Options{
		OutDir: ".",
		Labels: worksheet.German(),
		Styles: render.DefaultStyles(),
	}
}

// Output describes a finished run.
type Output struct {
	SheetID  string
	Document *exercise.Document
	Practice *render.Result
	Solution *render.Result
}

// Paths returns every written file, practice first.
func (o *Output) Paths() []string {
	var paths []string
	if o.Practice != nil {
		paths = append(paths, o.Practice.Paths...)
	}
	if o.Solution != nil {
		paths = append(paths, o.Solution.Paths...)
	}
	return paths
}

// Service turns a pasted payload into a practice and a solution document.
type Service struct {
	renderer render.Renderer
	log      *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a Service writing with r.
func NewService(r render.Renderer, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		renderer: r,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Load decodes and validates a payload. With strict set, the schema check
// runs first. Returns *exercise.SyntaxError, *exercise.SchemaError or
// *exercise.ValidationError.
func (s *Service) Load(payload []byte, strict bool) (*exercise.Document, error) {
	raw, err := exercise.Decode(payload)
	if err != nil {
		s.log.Warn("payload is not valid JSON", "error", err)
		return nil, err
	}
	if strict {
		if err := exercise.CheckSchema(raw); err != nil {
			s.log.Warn("payload failed schema check", "error", err)
			return nil, err
		}
	}
	doc, err := exercise.Validate(raw)
	if err != nil {
		s.log.Warn("payload rejected", "error", err)
		return nil, err
	}
	s.log.Debug("payload accepted", "topic", doc.Metadata.Topic, "exercises", doc.Len())
	return doc, nil
}

// Generate loads a payload and renders both documents. Nothing is written
// when the payload is rejected.
func (s *Service) Generate(payload []byte, opts Options) (*Output, error) {
	doc, err := s.Load(payload, opts.Strict)
	if err != nil {
		return nil, err
	}
	return s.GenerateDocument(doc, opts)
}

// GenerateDocument renders a validated document: practice first, then
// solution. A failure is returned as *RenderError.
func (s *Service) GenerateDocument(doc *exercise.Document, opts Options) (*Output, error) {
	practice, solution := worksheet.New(opts.Labels).Build(doc)

	out := &Output{SheetID: s.newID(), Document: doc}
	log := s.log.With("sheet_id", out.SheetID, "format", s.renderer.Format())

	prefix := opts.Prefix
	if prefix == "" {
		prefix = render.SafePrefix(doc.Metadata.Topic)
	}
	at := s.now()

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, &RenderError{Document: worksheet.VariantPractice, Err: fmt.Errorf("create output directory: %w", err)}
	}

	var completed []string
	for _, seq := range []worksheet.Sequence{practice, solution} {
		dest := render.Destination{
			Base:    render.BasePath(opts.OutDir, prefix, seq.Variant, at),
			SheetID: out.SheetID,
		}
		log.Debug("rendering", "document", seq.Variant, "base", dest.Base)

		res, err := s.renderer.Render(seq, opts.Styles, dest)
		if err != nil {
			log.Error("render failed", "document", seq.Variant, "error", err)
			if res != nil {
				completed = append(completed, res.Paths...)
			}
			return nil, &RenderError{Document: seq.Variant, Completed: completed, Err: err}
		}
		completed = append(completed, res.Paths...)
		log.Info("rendered", "document", seq.Variant, "paths", res.Paths, "pages", res.Pages)

		if seq.Variant == worksheet.VariantPractice {
			out.Practice = res
		} else {
			out.Solution = res
		}
	}

	return out, nil
}
