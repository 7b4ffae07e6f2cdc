package generate

import (
	"fmt"
	"strings"

	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// RenderError reports a failure while writing one of the two documents.
// Documents are written in order, practice first, so Completed lists what
// was written before the failure.
type RenderError struct {
	Document  worksheet.Variant
	Completed []string
	Err       error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("render %s sheet: %v", e.Document, e.Err)
	if len(e.Completed) > 0 {
		msg += fmt.Sprintf(" (already written: %s)", strings.Join(e.Completed, ", "))
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
