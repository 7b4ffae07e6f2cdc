package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// DefaultPrefix is used when a topic leaves nothing after sanitising.
const DefaultPrefix = "exercise"

// TimestampLayout formats the time part of output file names.
const TimestampLayout = "20060102_150405"

// SafePrefix turns a topic into a file name prefix: letters, digits,
// spaces and underscores are kept, the rest dropped, and spaces become
// underscores.
func SafePrefix(topic string) string {
	var sb strings.Builder
	for _, r := range topic {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			sb.WriteRune(r)
		}
	}
	prefix := strings.ReplaceAll(strings.TrimSpace(sb.String()), " ", "_")
	if prefix == "" {
		return DefaultPrefix
	}
	return prefix
}

// BasePath returns the extension-less output path of one document, e.g.
// "out/Nomen_practice_20251017_093000".
func BasePath(dir, prefix string, variant worksheet.Variant, at time.Time) string {
	name := fmt.Sprintf("%s_%s_%s", prefix, variant, at.Format(TimestampLayout))
	return filepath.Join(dir, name)
}
