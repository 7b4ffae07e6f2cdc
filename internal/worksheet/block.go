package worksheet

// Kind identifies what a block represents on the sheet.
type Kind string

const (
	KindTitle          Kind = "title"
	KindSubtitleHeader Kind = "subtitle_header"
	KindQuestion       Kind = "question"
	KindBullet         Kind = "bullet"
	KindAnswer         Kind = "answer"
	KindExplanation    Kind = "explanation"
	KindFieldLine      Kind = "field_line"
	KindSpacer         Kind = "spacer"
)

// Style is the tag a renderer maps to font, colour and indentation.
type Style string

const (
	StyleTitle       Style = "title"
	StyleSubtitle    Style = "subtitle"
	StyleQuestion    Style = "question"
	StyleAnswer      Style = "answer"
	StyleExplanation Style = "explanation"
	StyleNormal      Style = "normal"
)

// Marker is the symbol drawn in front of a bullet line.
type Marker int

const (
	MarkerNone Marker = iota
	// MarkerDot is a plain list bullet, used for sub-questions.
	MarkerDot
	// MarkerUnchecked is an empty option box.
	MarkerUnchecked
	// MarkerChecked is an option box with a tick.
	MarkerChecked
)

// Block is one unit of sheet content.
type Block struct {
	Kind  Kind
	Style Style

	// Label is a bold prefix such as "Lösung:" or "Name:". Empty for most blocks.
	Label string

	// Text is plain text. Renderers wrap it; it carries no markup.
	Text string

	// Number is the running exercise number. Set on question blocks only.
	Number int

	// Marker is set on bullet blocks only.
	Marker Marker

	// Indent is the nesting level: 0 for top-level blocks, 1 for blocks
	// that belong to a question, 2 for blocks that belong to a sub-question.
	Indent int

	// Space is the vertical gap in millimetres. Set on spacer blocks only.
	Space float64
}

// Variant tells practice and solution sequences apart.
type Variant string

const (
	VariantPractice Variant = "practice"
	VariantSolution Variant = "solution"
)

// Sequence is the ordered block list of one document.
type Sequence struct {
	Variant Variant
	Blocks  []Block
}

// Numbers returns the exercise numbers in emission order.
func (s Sequence) Numbers() []int {
	var nums []int
	for _, b := range s.Blocks {
		if b.Kind == KindQuestion {
			nums = append(nums, b.Number)
		}
	}
	return nums
}

// Count returns how many blocks of the given kind the sequence holds.
func (s Sequence) Count(kind Kind) int {
	n := 0
	for _, b := range s.Blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Headers returns the text of every sub-topic header in order.
func (s Sequence) Headers() []string {
	var out []string
	for _, b := range s.Blocks {
		if b.Kind == KindSubtitleHeader {
			out = append(out, b.Text)
		}
	}
	return out
}

// Title returns the text of the first title block, or "".
func (s Sequence) Title() string {
	for _, b := range s.Blocks {
		if b.Kind == KindTitle {
			return b.Text
		}
	}
	return ""
}
