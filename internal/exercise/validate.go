package exercise

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Wire names of the payload contract.
const (
	keyMetadata     = "metadata"
	keyExercises    = "exercises"
	keyTopic        = "topic"
	keyGrade        = "grade"
	keySubject      = "subject"
	keySubtopics    = "subtopics"
	keyID           = "id"
	keyType         = "type"
	keySubtopic     = "subtopic"
	keyQuestion     = "question"
	keyAnswer       = "answer"
	keyOptions      = "options"
	keyExplanation  = "explanation"
	keySubQuestions = "sub_questions"
)

// Validate checks a decoded payload against the exercise contract and
// returns the typed Document. It stops at the first violation and returns
// it as a *ValidationError.
//
// raw is expected to come from encoding/json (map[string]any, []any,
// string, float64 or json.Number, bool, nil). A required field counts as
// missing when its key is absent, null, or an empty string.
func Validate(raw any) (*Document, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, &ValidationError{Reason: ReasonMalformedRoot}
	}

	for _, section := range []string{keyMetadata, keyExercises} {
		if v, ok := root[section]; !ok || v == nil {
			return nil, &ValidationError{Reason: ReasonMissingSection, Field: section}
		}
	}

	items, ok := root[keyExercises].([]any)
	if !ok {
		return nil, &ValidationError{Reason: ReasonWrongType, Field: keyExercises}
	}

	meta, err := validateMetadata(root[keyMetadata])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		rec, err := validateExercise(i+1, item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &Document{Metadata: meta, Exercises: records}, nil
}

func validateMetadata(raw any) (Metadata, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Metadata{}, &ValidationError{Reason: ReasonWrongType, Field: keyMetadata}
	}

	var values [3]string
	for i, field := range []string{keyTopic, keyGrade, keySubject} {
		s, state := lookupString(m, field)
		switch state {
		case fieldMissing:
			return Metadata{}, &ValidationError{Reason: ReasonMissingMetadataField, Field: field}
		case fieldWrongType:
			return Metadata{}, &ValidationError{Reason: ReasonWrongType, Field: field}
		}
		values[i] = s
	}

	meta := Metadata{Topic: values[0], Grade: values[1], Subject: values[2]}

	if v, ok := m[keySubtopics]; ok && v != nil {
		list, ok := stringList(v)
		if !ok {
			return Metadata{}, &ValidationError{Reason: ReasonWrongType, Field: keySubtopics}
		}
		meta.Subtopics = list
	}

	return meta, nil
}

func validateExercise(pos int, raw any) (Record, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Record{}, &ValidationError{Reason: ReasonMalformedExercise, Exercise: pos}
	}

	var rec Record

	id, err := requireID(pos, m)
	if err != nil {
		return Record{}, err
	}
	rec.ID = id

	if rec.Type, err = requireExerciseString(pos, m, keyType); err != nil {
		return Record{}, err
	}
	if rec.Question, err = requireExerciseString(pos, m, keyQuestion); err != nil {
		return Record{}, err
	}
	if rec.Subtopic, err = optionalExerciseString(pos, m, keySubtopic); err != nil {
		return Record{}, err
	}
	if rec.Explanation, err = optionalExerciseString(pos, m, keyExplanation); err != nil {
		return Record{}, err
	}

	if hasSubQuestions(m) {
		subs, err := validateSubQuestions(pos, m[keySubQuestions])
		if err != nil {
			return Record{}, err
		}
		rec.Shape = Structured{SubQuestions: subs}
		return rec, nil
	}

	answer, err := requireExerciseString(pos, m, keyAnswer)
	if err != nil {
		return Record{}, err
	}
	flat := Flat{Answer: answer}

	// A non-list options value is ignored; strict mode reports it through
	// the schema.
	if v, ok := m[keyOptions]; ok && v != nil {
		if _, isList := v.([]any); isList {
			list, ok := stringList(v)
			if !ok {
				return Record{}, &ValidationError{Reason: ReasonWrongType, Field: keyOptions, Exercise: pos}
			}
			flat.Options = list
		}
	}

	rec.Shape = flat
	return rec, nil
}

// hasSubQuestions reports whether the exercise takes the structured path.
// An absent, null, or empty sub_questions value selects the flat path.
func hasSubQuestions(m map[string]any) bool {
	v, ok := m[keySubQuestions]
	if !ok || v == nil {
		return false
	}
	if list, isList := v.([]any); isList && len(list) == 0 {
		return false
	}
	return true
}

func validateSubQuestions(pos int, raw any) ([]SubQuestion, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, &ValidationError{Reason: ReasonWrongType, Field: keySubQuestions, Exercise: pos}
	}

	subs := make([]SubQuestion, 0, len(items))
	for j, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &ValidationError{Reason: ReasonMalformedSubQuestion, Exercise: pos, SubQuestion: j + 1}
		}

		var sq SubQuestion
		for _, field := range []string{keyQuestion, keyAnswer} {
			s, state := lookupString(m, field)
			switch state {
			case fieldMissing:
				return nil, &ValidationError{Reason: ReasonMissingSubQuestionField, Field: field, Exercise: pos, SubQuestion: j + 1}
			case fieldWrongType:
				return nil, &ValidationError{Reason: ReasonWrongType, Field: field, Exercise: pos, SubQuestion: j + 1}
			}
			if field == keyQuestion {
				sq.Question = s
			} else {
				sq.Answer = s
			}
		}

		s, state := lookupString(m, keyExplanation)
		if state == fieldWrongType {
			return nil, &ValidationError{Reason: ReasonWrongType, Field: keyExplanation, Exercise: pos, SubQuestion: j + 1}
		}
		sq.Explanation = s

		subs = append(subs, sq)
	}
	return subs, nil
}

func requireID(pos int, m map[string]any) (int, error) {
	v, ok := m[keyID]
	if !ok || v == nil || v == "" {
		return 0, &ValidationError{Reason: ReasonMissingExerciseField, Field: keyID, Exercise: pos}
	}
	id, ok := toInt(v)
	if !ok {
		return 0, &ValidationError{Reason: ReasonWrongType, Field: keyID, Exercise: pos}
	}
	return id, nil
}

func requireExerciseString(pos int, m map[string]any, field string) (string, error) {
	s, state := lookupString(m, field)
	switch state {
	case fieldMissing:
		return "", &ValidationError{Reason: ReasonMissingExerciseField, Field: field, Exercise: pos}
	case fieldWrongType:
		return "", &ValidationError{Reason: ReasonWrongType, Field: field, Exercise: pos}
	}
	return s, nil
}

func optionalExerciseString(pos int, m map[string]any, field string) (string, error) {
	s, state := lookupString(m, field)
	if state == fieldWrongType {
		return "", &ValidationError{Reason: ReasonWrongType, Field: field, Exercise: pos}
	}
	return s, nil
}

type fieldState int

const (
	fieldPresent fieldState = iota
	fieldMissing
	fieldWrongType
)

// lookupString reads a scalar field as a string. Numbers and booleans are
// formatted; objects and arrays are a type error.
func lookupString(m map[string]any, key string) (string, fieldState) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", fieldMissing
	}
	s, ok := scalarString(v)
	if !ok {
		return "", fieldWrongType
	}
	if s == "" {
		return "", fieldMissing
	}
	return s, fieldPresent
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := scalarString(item)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// toInt accepts whole numbers that fit in an int.
func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		if t < math.MinInt || t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case float64:
		if t != math.Trunc(t) || t < math.MinInt || t >= -math.MinInt {
			return 0, false
		}
		return int(t), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return toInt(n)
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return toInt(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
