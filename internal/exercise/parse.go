package exercise

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Parse decodes a pasted AI response and validates it.
//
// Chat services often wrap JSON in Markdown fences or add a sentence
// before and after it, so the text is narrowed to the outermost JSON
// object first. Numbers are decoded as json.Number to keep ids exact.
func Parse(data []byte) (*Document, error) {
	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Validate(raw)
}

// Decode extracts and decodes the JSON value from a pasted response
// without validating it. Returns *SyntaxError on failure.
func Decode(data []byte) (any, error) {
	text := extractJSON(string(data))
	if text == "" {
		return nil, &SyntaxError{Err: errors.New("empty input")}
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &SyntaxError{Err: errors.New("unexpected data after JSON value")}
	}
	return raw, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractJSON narrows free text to the outermost JSON value. An array
// that encloses every object is kept whole so the validator rejects the
// root; otherwise the span between the first '{' and the last '}' is used.
// Text without an object is returned fence-stripped so the decoder
// reports the real problem.
func extractJSON(s string) string {
	s = stripCodeFences(s)
	if strings.HasPrefix(s, "[") {
		return s
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return s
	}
	open := strings.IndexByte(s, '[')
	closing := strings.LastIndexByte(s, ']')
	if open >= 0 && open < start && closing > end {
		return s[open : closing+1]
	}
	return s[start : end+1]
}
