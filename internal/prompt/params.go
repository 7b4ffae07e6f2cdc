package prompt

import (
	"fmt"
	"strings"

	"github.com/abhisek/worksheetgen/internal/catalog"
)

// Params are the form inputs a prompt is built from.
type Params struct {
	Grade   string
	Subject string
	Topic   string

	// Subtopics may be empty; the topic is then the only sub-topic.
	Subtopics []string

	ExerciseTypes []string

	// Count is the number of questions per exercise.
	Count int
}

// Field names reported by ParamError.
const (
	FieldGrade         = "grade"
	FieldSubject       = "subject"
	FieldTopic         = "topic"
	FieldExerciseTypes = "exercise types"
	FieldCount         = "count"
)

// ParamError reports the first invalid form field.
type ParamError struct {
	Field   string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the fields in form order and reports the first problem.
// Grades and subjects outside the catalog are allowed.
func (p Params) Validate(cat *catalog.Catalog) error {
	required := []struct {
		field string
		value string
	}{
		{FieldGrade, p.Grade},
		{FieldSubject, p.Subject},
		{FieldTopic, p.Topic},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ParamError{Field: r.field, Message: "is required"}
		}
	}

	if len(p.ExerciseTypes) == 0 {
		return &ParamError{Field: FieldExerciseTypes, Message: "select at least one"}
	}

	q := cat.Questions
	if p.Count < q.Min || p.Count > q.Max {
		return &ParamError{Field: FieldCount, Message: fmt.Sprintf("must be between %d and %d", q.Min, q.Max)}
	}
	return nil
}

// EffectiveSubtopics returns Subtopics, or the topic alone when none are set.
func (p Params) EffectiveSubtopics() []string {
	if len(p.Subtopics) == 0 {
		return []string{strings.TrimSpace(p.Topic)}
	}
	return p.Subtopics
}

// ParseSubtopics splits a comma-separated list, trimming blanks and
// dropping empty entries and repeats.
func ParseSubtopics(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
