package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Grades, 15)
	assert.Equal(t, "1. Klasse", c.Grades[0])
	assert.Equal(t, "Universität", c.Grades[14])

	assert.Len(t, c.Subjects, 22)
	assert.Equal(t, "Mathematik", c.SubjectNames()[0])

	assert.Equal(t, QuestionRange{Default: 5, Min: 1, Max: 50}, c.Questions)
}

func TestTypesFor(t *testing.T) {
	c := Default()

	assert.Equal(t,
		[]string{"Multiple Choice", "Rechenaufgaben", "Problemlösung", "Kurze Antworten", "Analyseaufgaben"},
		c.TypesFor("Mathematik"))
	assert.Equal(t,
		[]string{"Multiple Choice", "Offene Fragen", "Kurze Antworten", "Richtig/Falsch"},
		c.TypesFor("Sport"))
	assert.Equal(t,
		[]string{"Multiple Choice", "Offene Fragen", "Kurze Antworten"},
		c.TypesFor("Astronomie"))

	types := c.TypesFor("Sport")
	types[0] = "changed"
	assert.Equal(t, "Multiple Choice", c.TypesFor("Sport")[0])
}

func TestEveryTypeHasDescription(t *testing.T) {
	c := Default()
	for _, s := range c.Subjects {
		for _, typ := range s.ExerciseTypes {
			assert.NotEmpty(t, c.Describe(typ), "%s / %s", s.Name, typ)
		}
	}
	assert.Empty(t, c.Describe("Kreuzworträtsel"))
}

func TestLookups(t *testing.T) {
	c := Default()
	assert.True(t, c.HasSubject("Deutsch"))
	assert.False(t, c.HasSubject("deutsch"))
	assert.True(t, c.HasGrade("4. Klasse"))
	assert.False(t, c.HasGrade("4"))
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Subjects, 22)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grades: [Year 7]
subjects:
  - name: Maths
    exercise_types: [Multiple Choice]
default_exercise_types: [Short Answer]
questions: {default: 3, min: 1, max: 10}
`), 0o644))

	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year 7"}, c.Grades)
	assert.Equal(t, []string{"Short Answer"}, c.TypesFor("History"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "grades: [unclosed"},
		{"no grades", "subjects: [{name: A, exercise_types: [x]}]\ndefault_exercise_types: [x]\nquestions: {default: 1, min: 1, max: 1}"},
		{"no subjects", "grades: [a]\ndefault_exercise_types: [x]\nquestions: {default: 1, min: 1, max: 1}"},
		{"duplicate subject", "grades: [a]\nsubjects: [{name: A, exercise_types: [x]}, {name: A, exercise_types: [y]}]\ndefault_exercise_types: [x]\nquestions: {default: 1, min: 1, max: 1}"},
		{"subject without types", "grades: [a]\nsubjects: [{name: A}]\ndefault_exercise_types: [x]\nquestions: {default: 1, min: 1, max: 1}"},
		{"bad range", "grades: [a]\nsubjects: [{name: A, exercise_types: [x]}]\ndefault_exercise_types: [x]\nquestions: {default: 9, min: 1, max: 5}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
