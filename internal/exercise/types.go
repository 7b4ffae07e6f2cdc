package exercise

// Document is a validated exercise payload ready for layout.
// It is produced only by Validate (or Parse) and must not be mutated.
type Document struct {
	Metadata  Metadata
	Exercises []Record
}

// Metadata describes the worksheet as a whole.
type Metadata struct {
	Topic   string
	Grade   string
	Subject string

	// Subtopics is the list the AI was asked to cover. Informational only:
	// grouping in the output follows the exercises, not this list.
	Subtopics []string
}

// Record is a single pedagogical task.
type Record struct {
	// ID is assigned by the payload author and never shown to learners.
	// Display numbering is derived at layout time.
	ID int

	// Type is a free-form label such as "Multiple Choice" or "Lückentext".
	Type string

	// Subtopic is empty when the payload did not name one.
	Subtopic string

	// Question is the main prompt text.
	Question string

	// Explanation is optional rationale, shown only on the solution sheet.
	// For structured records this is the general explanation printed
	// after all sub-questions.
	Explanation string

	// Shape is either Flat or Structured. Never nil on a validated record.
	Shape Shape
}

// Shape is the sealed set of record layouts: Flat or Structured.
type Shape interface {
	isShape()
}

// Flat is a single question with one answer and optional choices.
type Flat struct {
	// Options is populated for selection-style records only.
	Options []string

	// Answer is the single correct answer. For selection-style records it
	// is compared to each option by exact string equality.
	Answer string
}

// Structured is a main question with one or more concrete sub-questions.
// A parent answer or options list in the payload is ignored.
type Structured struct {
	SubQuestions []SubQuestion
}

func (Flat) isShape()       {}
func (Structured) isShape() {}

// SubQuestion is one concrete item under a structured record.
type SubQuestion struct {
	Question    string
	Answer      string
	Explanation string
}

// Len returns the number of exercise records.
func (d *Document) Len() int {
	return len(d.Exercises)
}
