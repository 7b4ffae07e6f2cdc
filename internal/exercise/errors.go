package exercise

import "fmt"

// Reason classifies why a payload was rejected.
type Reason string

const (
	ReasonMalformedRoot           Reason = "malformed_root"
	ReasonMissingSection          Reason = "missing_section"
	ReasonWrongType               Reason = "wrong_type"
	ReasonMissingMetadataField    Reason = "missing_metadata_field"
	ReasonMalformedExercise       Reason = "malformed_exercise"
	ReasonMissingExerciseField    Reason = "missing_exercise_field"
	ReasonMalformedSubQuestion    Reason = "malformed_sub_question"
	ReasonMissingSubQuestionField Reason = "missing_sub_question_field"
)

// ValidationError describes the first contract violation found in a payload.
// Exercise and SubQuestion are 1-based positions; zero means not applicable.
type ValidationError struct {
	Reason      Reason
	Field       string
	Exercise    int
	SubQuestion int
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonMalformedRoot:
		return "payload must be a JSON object"
	case ReasonMissingSection:
		return fmt.Sprintf("payload must contain %q", e.Field)
	case ReasonWrongType:
		if e.SubQuestion > 0 {
			return fmt.Sprintf("exercise %d, sub-question %d: %q has the wrong type", e.Exercise, e.SubQuestion, e.Field)
		}
		if e.Exercise > 0 {
			return fmt.Sprintf("exercise %d: %q has the wrong type", e.Exercise, e.Field)
		}
		return fmt.Sprintf("%q has the wrong type", e.Field)
	case ReasonMissingMetadataField:
		return fmt.Sprintf("metadata must contain %q", e.Field)
	case ReasonMalformedExercise:
		return fmt.Sprintf("exercise %d must be a JSON object", e.Exercise)
	case ReasonMissingExerciseField:
		return fmt.Sprintf("exercise %d must contain %q", e.Exercise, e.Field)
	case ReasonMalformedSubQuestion:
		return fmt.Sprintf("exercise %d, sub-question %d must be a JSON object", e.Exercise, e.SubQuestion)
	case ReasonMissingSubQuestionField:
		return fmt.Sprintf("exercise %d, sub-question %d must contain %q", e.Exercise, e.SubQuestion, e.Field)
	}
	return fmt.Sprintf("invalid payload: %s", e.Reason)
}

// SyntaxError indicates the payload text is not decodable JSON.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// SchemaError indicates the payload passed the structural checks but does
// not conform to PayloadSchema (strict mode only).
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
