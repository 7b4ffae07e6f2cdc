package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Catalog is the static lookup data behind the prompt form.
type Catalog struct {
	Grades               []string          `yaml:"grades"`
	Subjects             []Subject         `yaml:"subjects"`
	DefaultExerciseTypes []string          `yaml:"default_exercise_types"`
	Descriptions         map[string]string `yaml:"descriptions"`
	Questions            QuestionRange     `yaml:"questions"`
}

// Subject is one school subject and the exercise types that suit it.
type Subject struct {
	Name          string   `yaml:"name"`
	ExerciseTypes []string `yaml:"exercise_types"`
}

// QuestionRange bounds the per-exercise question count.
type QuestionRange struct {
	Default int `yaml:"default"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path returns the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and checks catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog can drive the form.
func (c *Catalog) Validate() error {
	if len(c.Grades) == 0 {
		return errors.New("catalog has no grades")
	}
	if len(c.Subjects) == 0 {
		return errors.New("catalog has no subjects")
	}
	if len(c.DefaultExerciseTypes) == 0 {
		return errors.New("catalog has no default exercise types")
	}

	seen := make(map[string]bool, len(c.Subjects))
	for i, s := range c.Subjects {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("subject %d has no name", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("subject %q is listed twice", s.Name)
		}
		seen[s.Name] = true
		if len(s.ExerciseTypes) == 0 {
			return fmt.Errorf("subject %q has no exercise types", s.Name)
		}
	}

	q := c.Questions
	if q.Min < 1 || q.Max < q.Min || q.Default < q.Min || q.Default > q.Max {
		return fmt.Errorf("invalid question range: default %d, min %d, max %d", q.Default, q.Min, q.Max)
	}
	return nil
}

// SubjectNames returns the subject names in catalog order.
func (c *Catalog) SubjectNames() []string {
	names := make([]string, len(c.Subjects))
	for i, s := range c.Subjects {
		names[i] = s.Name
	}
	return names
}

// TypesFor returns the exercise types for a subject, or the default types
// when the subject is not in the catalog.
func (c *Catalog) TypesFor(subject string) []string {
	for _, s := range c.Subjects {
		if s.Name == subject {
			return slices.Clone(s.ExerciseTypes)
		}
	}
	return slices.Clone(c.DefaultExerciseTypes)
}

// HasSubject reports whether subject is listed.
func (c *Catalog) HasSubject(subject string) bool {
	return slices.Contains(c.SubjectNames(), subject)
}

// HasGrade reports whether grade is listed.
func (c *Catalog) HasGrade(grade string) bool {
	return slices.Contains(c.Grades, grade)
}

// Describe returns the description of an exercise type, or "".
func (c *Catalog) Describe(exerciseType string) string {
	return c.Descriptions[exerciseType]
}
