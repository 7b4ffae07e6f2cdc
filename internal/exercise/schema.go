package exercise

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaName identifies the payload schema resource.
const SchemaName = "exercise-payload"

// PayloadSchema is the JSON schema of the exercise payload. It is stricter
// than Validate: it also checks value types, which the structural checks
// coerce where they can.
var PayloadSchema = map[string]any{
	"$schema":     "https://json-schema.org/draft/2020-12/schema",
	"title":       "Exercise payload",
	"description": "Worksheet metadata and exercises as returned by the AI chat service",
	"type":        "object",
	"required":    []any{"metadata", "exercises"},
	"properties": map[string]any{
		"metadata": map[string]any{
			"type":     "object",
			"required": []any{"topic", "grade", "subject"},
			"properties": map[string]any{
				"topic":   map[string]any{"type": "string", "minLength": 1},
				"grade":   map[string]any{"type": "string", "minLength": 1},
				"subject": map[string]any{"type": "string", "minLength": 1},
				"subtopics": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		"exercises": map[string]any{
			"type":  "array",
			"items": exerciseSchema,
		},
	},
}

var exerciseSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type", "question"},
	"properties": map[string]any{
		"id":       map[string]any{"type": "integer"},
		"type":     map[string]any{"type": "string", "minLength": 1},
		"subtopic": map[string]any{"type": "string"},
		"question": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
		"answer":      map[string]any{"type": []any{"string", "null"}},
		"explanation": map[string]any{"type": []any{"string", "null"}},
		"sub_questions": map[string]any{
			"type": []any{"array", "null"},
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question", "answer"},
				"properties": map[string]any{
					"question":    map[string]any{"type": "string", "minLength": 1},
					"answer":      map[string]any{"type": "string", "minLength": 1},
					"explanation": map[string]any{"type": []any{"string", "null"}},
				},
			},
		},
	},
	"anyOf": []any{
		map[string]any{
			"required": []any{"sub_questions"},
			"properties": map[string]any{
				"sub_questions": map[string]any{"type": "array", "minItems": 1},
			},
		},
		map[string]any{
			"required": []any{"answer"},
			"properties": map[string]any{
				"answer": map[string]any{"type": "string", "minLength": 1},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// CheckSchema validates a decoded payload against PayloadSchema.
// Returns *SchemaError on failure.
func CheckSchema(raw any) error {
	compiled, err := getCompiledSchema()
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("compile schema %q: %w", SchemaName, err)}
	}
	if err := compiled.Validate(raw); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}

// SchemaJSON returns PayloadSchema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(PayloadSchema, "", "  ")
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go map
		// literals with []any of mixed origin, so round-trip it.
		defBytes, err := json.Marshal(PayloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		schemaURL := fmt.Sprintf("schema://%s.json", SchemaName)
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
