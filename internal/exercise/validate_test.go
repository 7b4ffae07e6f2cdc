package exercise

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	raw, err := Decode([]byte(s))
	require.NoError(t, err)
	return raw
}

func validationErr(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	return verr
}

const meta = `"metadata": {"topic": "Nomen", "grade": "4. Klasse", "subject": "Deutsch"}`

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		reason      Reason
		field       string
		exercise    int
		subQuestion int
	}{
		{
			name:    "array root",
			payload: `[1, 2]`,
			reason:  ReasonMalformedRoot,
		},
		{
			name:    "array root after prose",
			payload: "Hier sind die Aufgaben:\n[{" + meta + `, "exercises": []}]`,
			reason:  ReasonMalformedRoot,
		},
		{
			name:    "string root",
			payload: `"hello"`,
			reason:  ReasonMalformedRoot,
		},
		{
			name:    "missing metadata",
			payload: `{"exercises": []}`,
			reason:  ReasonMissingSection,
			field:   "metadata",
		},
		{
			name:    "missing exercises",
			payload: `{` + meta + `}`,
			reason:  ReasonMissingSection,
			field:   "exercises",
		},
		{
			name:    "null exercises",
			payload: `{` + meta + `, "exercises": null}`,
			reason:  ReasonMissingSection,
			field:   "exercises",
		},
		{
			name:    "exercises not a list",
			payload: `{` + meta + `, "exercises": {"id": 1}}`,
			reason:  ReasonWrongType,
			field:   "exercises",
		},
		{
			name:    "metadata not an object",
			payload: `{"metadata": "Nomen", "exercises": []}`,
			reason:  ReasonWrongType,
			field:   "metadata",
		},
		{
			name:    "missing topic",
			payload: `{"metadata": {"grade": "4", "subject": "Deutsch"}, "exercises": []}`,
			reason:  ReasonMissingMetadataField,
			field:   "topic",
		},
		{
			name:    "missing grade",
			payload: `{"metadata": {"topic": "Nomen", "subject": "Deutsch"}, "exercises": []}`,
			reason:  ReasonMissingMetadataField,
			field:   "grade",
		},
		{
			name:    "missing subject",
			payload: `{"metadata": {"topic": "Nomen", "grade": "4"}, "exercises": []}`,
			reason:  ReasonMissingMetadataField,
			field:   "subject",
		},
		{
			name:    "empty subject",
			payload: `{"metadata": {"topic": "Nomen", "grade": "4", "subject": ""}, "exercises": []}`,
			reason:  ReasonMissingMetadataField,
			field:   "subject",
		},
		{
			name:    "subtopics not a list",
			payload: `{"metadata": {"topic": "Nomen", "grade": "4", "subject": "Deutsch", "subtopics": {"a": 1}}, "exercises": []}`,
			reason:  ReasonWrongType,
			field:   "subtopics",
		},
		{
			name:     "exercise not an object",
			payload:  `{` + meta + `, "exercises": ["Frage"]}`,
			reason:   ReasonMalformedExercise,
			exercise: 1,
		},
		{
			name:     "flat missing id",
			payload:  `{` + meta + `, "exercises": [{"type": "MC", "question": "Q", "answer": "A"}]}`,
			reason:   ReasonMissingExerciseField,
			field:    "id",
			exercise: 1,
		},
		{
			name:     "id beyond int range",
			payload:  `{` + meta + `, "exercises": [{"id": 1e30, "type": "MC", "question": "Q", "answer": "A"}]}`,
			reason:   ReasonWrongType,
			field:    "id",
			exercise: 1,
		},
		{
			name:     "id beyond int64 as integer literal",
			payload:  `{` + meta + `, "exercises": [{"id": 99999999999999999999, "type": "MC", "question": "Q", "answer": "A"}]}`,
			reason:   ReasonWrongType,
			field:    "id",
			exercise: 1,
		},
		{
			name:     "flat missing type",
			payload:  `{` + meta + `, "exercises": [{"id": 1, "question": "Q", "answer": "A"}]}`,
			reason:   ReasonMissingExerciseField,
			field:    "type",
			exercise: 1,
		},
		{
			name:     "flat missing question",
			payload:  `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "answer": "A"}]}`,
			reason:   ReasonMissingExerciseField,
			field:    "question",
			exercise: 1,
		},
		{
			name: "flat missing answer on second exercise",
			payload: `{` + meta + `, "exercises": [
				{"id": 1, "type": "MC", "question": "Q", "answer": "A"},
				{"id": 2, "type": "MC", "question": "Q"}]}`,
			reason:   ReasonMissingExerciseField,
			field:    "answer",
			exercise: 2,
		},
		{
			name:     "empty sub_questions falls back to flat and needs answer",
			payload:  `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "question": "Q", "sub_questions": []}]}`,
			reason:   ReasonMissingExerciseField,
			field:    "answer",
			exercise: 1,
		},
		{
			name:     "structured missing question",
			payload:  `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "sub_questions": [{"question": "a", "answer": "b"}]}]}`,
			reason:   ReasonMissingExerciseField,
			field:    "question",
			exercise: 1,
		},
		{
			name:     "sub_questions not a list",
			payload:  `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "question": "Q", "sub_questions": "a"}]}`,
			reason:   ReasonWrongType,
			field:    "sub_questions",
			exercise: 1,
		},
		{
			name: "sub-question missing answer",
			payload: `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "question": "Q", "sub_questions": [
				{"question": "a", "answer": "b"},
				{"question": "c"}]}]}`,
			reason:      ReasonMissingSubQuestionField,
			field:       "answer",
			exercise:    1,
			subQuestion: 2,
		},
		{
			name:        "sub-question missing question",
			payload:     `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "question": "Q", "sub_questions": [{"answer": "b"}]}]}`,
			reason:      ReasonMissingSubQuestionField,
			field:       "question",
			exercise:    1,
			subQuestion: 1,
		},
		{
			name:        "sub-question not an object",
			payload:     `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "question": "Q", "sub_questions": ["a"]}]}`,
			reason:      ReasonMalformedSubQuestion,
			exercise:    1,
			subQuestion: 1,
		},
		{
			name:     "fractional id",
			payload:  `{` + meta + `, "exercises": [{"id": 1.5, "type": "MC", "question": "Q", "answer": "A"}]}`,
			reason:   ReasonWrongType,
			field:    "id",
			exercise: 1,
		},
		{
			name:     "question is an object",
			payload:  `{` + meta + `, "exercises": [{"id": 1, "type": "MC", "question": {"text": "Q"}, "answer": "A"}]}`,
			reason:   ReasonWrongType,
			field:    "question",
			exercise: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Validate(decode(t, tt.payload))
			assert.Nil(t, doc)
			verr := validationErr(t, err)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.exercise, verr.Exercise)
			assert.Equal(t, tt.subQuestion, verr.SubQuestion)
		})
	}
}

func TestValidate_MissingSubjectNamesField(t *testing.T) {
	_, err := Validate(decode(t, `{"metadata": {"topic": "Nomen", "grade": "4"}, "exercises": [{"id": 1}]}`))
	verr := validationErr(t, err)
	assert.Equal(t, ReasonMissingMetadataField, verr.Reason)
	assert.Equal(t, "subject", verr.Field)
	assert.Contains(t, err.Error(), `"subject"`)
}

func TestValidate_FailFastReportsFirstViolation(t *testing.T) {
	payload := `{` + meta + `, "exercises": [
		{"id": 1, "type": "MC"},
		{"type": "MC", "question": "Q", "answer": "A"}]}`
	_, err := Validate(decode(t, payload))
	verr := validationErr(t, err)
	assert.Equal(t, 1, verr.Exercise)
	assert.Equal(t, "question", verr.Field)
}

func TestValidate_EmptyExercises(t *testing.T) {
	doc, err := Validate(decode(t, `{`+meta+`, "exercises": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, "Nomen", doc.Metadata.Topic)
	assert.Equal(t, "4. Klasse", doc.Metadata.Grade)
	assert.Equal(t, "Deutsch", doc.Metadata.Subject)
	assert.Empty(t, doc.Metadata.Subtopics)
}

func TestValidate_FlatRecord(t *testing.T) {
	payload := `{` + meta + `, "exercises": [{
		"id": 7, "type": "Multiple Choice", "subtopic": "Artikel",
		"question": "Welcher Artikel passt? ___ Baum",
		"options": ["der", "die", "das"], "answer": "der",
		"explanation": "Baum ist maskulin."}]}`

	doc, err := Validate(decode(t, payload))
	require.NoError(t, err)
	require.Len(t, doc.Exercises, 1)

	rec := doc.Exercises[0]
	assert.Equal(t, 7, rec.ID)
	assert.Equal(t, "Multiple Choice", rec.Type)
	assert.Equal(t, "Artikel", rec.Subtopic)
	assert.Equal(t, "Baum ist maskulin.", rec.Explanation)

	flat, ok := rec.Shape.(Flat)
	require.True(t, ok, "expected Flat, got %T", rec.Shape)
	assert.Equal(t, []string{"der", "die", "das"}, flat.Options)
	assert.Equal(t, "der", flat.Answer)
}

func TestValidate_StructuredRecordNeedsNoTopLevelAnswer(t *testing.T) {
	payload := `{` + meta + `, "exercises": [{
		"id": 1, "type": "Unterstreichen", "question": "Unterstreiche:",
		"options": ["ignored"],
		"sub_questions": [
			{"question": "a", "answer": "b", "explanation": "c"},
			{"question": "d", "answer": "e"}],
		"explanation": "general"}]}`

	doc, err := Validate(decode(t, payload))
	require.NoError(t, err)

	rec := doc.Exercises[0]
	assert.Equal(t, "", rec.Subtopic)
	assert.Equal(t, "general", rec.Explanation)

	st, ok := rec.Shape.(Structured)
	require.True(t, ok, "expected Structured, got %T", rec.Shape)
	assert.Equal(t, []SubQuestion{
		{Question: "a", Answer: "b", Explanation: "c"},
		{Question: "d", Answer: "e"},
	}, st.SubQuestions)
}

func TestValidate_Coercions(t *testing.T) {
	payload := `{"metadata": {"topic": "Brüche", "grade": 5, "subject": "Mathematik", "subtopics": ["Kürzen"]},
		"exercises": [
			{"id": "3", "type": "Rechenaufgaben", "question": "1/2 + 1/4 = ?", "answer": 0.75, "options": null, "explanation": null},
			{"id": 4.0, "type": "Richtig/Falsch", "question": "2 > 1", "answer": true, "options": "not a list"}]}`

	doc, err := Validate(decode(t, payload))
	require.NoError(t, err)

	assert.Equal(t, "5", doc.Metadata.Grade)
	assert.Equal(t, []string{"Kürzen"}, doc.Metadata.Subtopics)

	first := doc.Exercises[0]
	assert.Equal(t, 3, first.ID)
	assert.Equal(t, "", first.Explanation)
	assert.Equal(t, Flat{Answer: "0.75"}, first.Shape)

	second := doc.Exercises[1]
	assert.Equal(t, 4, second.ID)
	assert.Equal(t, Flat{Answer: "true"}, second.Shape)
}

func TestValidate_PlainUnmarshalInput(t *testing.T) {
	raw := map[string]any{
		"metadata": map[string]any{"topic": "T", "grade": "G", "subject": "S"},
		"exercises": []any{
			map[string]any{"id": float64(1), "type": "MC", "question": "Q", "answer": "A"},
		},
	}
	doc, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Exercises[0].ID)
}

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Reason: ReasonMalformedRoot}, "payload must be a JSON object"},
		{&ValidationError{Reason: ReasonMissingSection, Field: "metadata"}, `payload must contain "metadata"`},
		{&ValidationError{Reason: ReasonWrongType, Field: "exercises"}, `"exercises" has the wrong type`},
		{&ValidationError{Reason: ReasonWrongType, Field: "id", Exercise: 2}, `exercise 2: "id" has the wrong type`},
		{&ValidationError{Reason: ReasonWrongType, Field: "answer", Exercise: 1, SubQuestion: 3}, `exercise 1, sub-question 3: "answer" has the wrong type`},
		{&ValidationError{Reason: ReasonMissingMetadataField, Field: "grade"}, `metadata must contain "grade"`},
		{&ValidationError{Reason: ReasonMissingExerciseField, Field: "answer", Exercise: 3}, `exercise 3 must contain "answer"`},
		{&ValidationError{Reason: ReasonMissingSubQuestionField, Field: "answer", Exercise: 1, SubQuestion: 2}, `exercise 1, sub-question 2 must contain "answer"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestToInt_Range(t *testing.T) {
	for _, v := range []any{1e30, -1e30, math.Inf(1), math.NaN(), json.Number("1e30"), json.Number("-99999999999999999999")} {
		_, ok := toInt(v)
		assert.False(t, ok, "%v", v)
	}
	n, ok := toInt(json.Number("4e3"))
	assert.True(t, ok)
	assert.Equal(t, 4000, n)
}
