package worksheet

import (
	"fmt"

	"github.com/abhisek/worksheetgen/internal/exercise"
)

// Vertical rhythm of the sheets, in millimetres.
const (
	practiceAfterTitle = 5
	practiceAfterName  = 3
	practiceAfterDate  = 10
	practiceAfterItem  = 8
	practiceAfterGroup = 5

	solutionAfterTitle = 10
	solutionAfterItem  = 5
	solutionAfterGroup = 3

	afterHeader = 3
)

// Builder turns a validated document into practice and solution block
// sequences. A Builder holds only its labels and is safe to reuse.
type Builder struct {
	labels Labels
}

// New creates a Builder printing the given labels.
func New(labels Labels) *Builder {
	return &Builder{labels: labels}
}

// Build emits both sequences. Groups and numbers are identical in the two
// documents, so an item can be looked up by number on either sheet.
//
// doc must come from exercise.Validate. Build panics on a nil document or
// a record without a shape.
func (b *Builder) Build(doc *exercise.Document) (practice, solution Sequence) {
	if doc == nil {
		panic("worksheet: Build called with nil document")
	}

	p := &emitter{variant: VariantPractice}
	s := &emitter{variant: VariantSolution}

	b.framePractice(p, doc.Metadata)
	b.frameSolution(s, doc.Metadata)

	number := 0
	for _, g := range GroupBySubtopic(doc.Exercises, b.labels.General) {
		p.header(g.Label)
		s.header(g.Label)

		for _, rec := range g.Records {
			number++
			b.emitRecord(p, s, number, rec)
		}

		p.spacer(practiceAfterGroup)
		s.spacer(solutionAfterGroup)
	}

	return p.sequence(), s.sequence()
}

func (b *Builder) title(meta exercise.Metadata, kind string) string {
	return fmt.Sprintf("%s – %s (%s %s)", meta.Topic, kind, meta.Grade, meta.Subject)
}

func (b *Builder) framePractice(e *emitter, meta exercise.Metadata) {
	e.add(Block{Kind: KindTitle, Style: StyleTitle, Text: b.title(meta, b.labels.PracticeTitle)})
	e.spacer(practiceAfterTitle)
	e.add(Block{Kind: KindFieldLine, Style: StyleNormal, Label: b.labels.Name, Text: b.labels.Blank})
	e.spacer(practiceAfterName)
	e.add(Block{Kind: KindFieldLine, Style: StyleNormal, Label: b.labels.Date, Text: b.labels.Blank})
	e.spacer(practiceAfterDate)
}

func (b *Builder) frameSolution(e *emitter, meta exercise.Metadata) {
	e.add(Block{Kind: KindTitle, Style: StyleTitle, Text: b.title(meta, b.labels.SolutionTitle)})
	e.spacer(solutionAfterTitle)
}

func (b *Builder) emitRecord(p, s *emitter, number int, rec exercise.Record) {
	question := Block{Kind: KindQuestion, Style: StyleQuestion, Number: number, Text: rec.Question}
	p.add(question)
	s.add(question)

	switch shape := rec.Shape.(type) {
	case exercise.Structured:
		b.emitStructured(p, s, rec, shape)
	case exercise.Flat:
		b.emitFlat(p, s, rec, shape)
	case nil:
		panic(fmt.Sprintf("worksheet: exercise %d has no shape", rec.ID))
	default:
		panic(fmt.Sprintf("worksheet: exercise %d has unknown shape %T", rec.ID, shape))
	}

	p.spacer(practiceAfterItem)
	s.spacer(solutionAfterItem)
}

func (b *Builder) emitStructured(p, s *emitter, rec exercise.Record, shape exercise.Structured) {
	for _, sq := range shape.SubQuestions {
		bullet := Block{Kind: KindBullet, Style: StyleNormal, Marker: MarkerDot, Indent: 1, Text: sq.Question}
		p.add(bullet)
		s.add(bullet)

		s.add(Block{Kind: KindAnswer, Style: StyleAnswer, Label: b.labels.Answer, Indent: 2, Text: sq.Answer})
		if sq.Explanation != "" {
			s.add(Block{Kind: KindExplanation, Style: StyleExplanation, Label: b.labels.Explanation, Indent: 2, Text: sq.Explanation})
		}
	}

	if rec.Explanation != "" {
		s.add(Block{Kind: KindExplanation, Style: StyleExplanation, Label: b.labels.GeneralExplanation, Indent: 1, Text: rec.Explanation})
	}
}

func (b *Builder) emitFlat(p, s *emitter, rec exercise.Record, shape exercise.Flat) {
	for _, opt := range shape.Options {
		p.add(Block{Kind: KindBullet, Style: StyleNormal, Marker: MarkerUnchecked, Indent: 1, Text: opt})

		marker := MarkerUnchecked
		if opt == shape.Answer {
			marker = MarkerChecked
		}
		s.add(Block{Kind: KindBullet, Style: StyleNormal, Marker: marker, Indent: 1, Text: opt})
	}

	s.add(Block{Kind: KindAnswer, Style: StyleAnswer, Label: b.labels.Answer, Indent: 1, Text: shape.Answer})
	if rec.Explanation != "" {
		s.add(Block{Kind: KindExplanation, Style: StyleExplanation, Label: b.labels.Explanation, Indent: 1, Text: rec.Explanation})
	}
}

type emitter struct {
	variant Variant
	blocks  []Block
}

func (e *emitter) add(b Block) {
	e.blocks = append(e.blocks, b)
}

func (e *emitter) header(label string) {
	e.add(Block{Kind: KindSubtitleHeader, Style: StyleSubtitle, Text: label})
	e.spacer(afterHeader)
}

func (e *emitter) spacer(mm float64) {
	e.add(Block{Kind: KindSpacer, Space: mm})
}

func (e *emitter) sequence() Sequence {
	return Sequence{Variant: e.variant, Blocks: e.blocks}
}
