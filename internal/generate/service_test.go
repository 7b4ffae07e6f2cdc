package generate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/worksheetgen/internal/exercise"
	"github.com/abhisek/worksheetgen/internal/logger"
	"github.com/abhisek/worksheetgen/internal/render"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

// stubRenderer records calls and fails on a chosen document.
type stubRenderer struct {
	failOn worksheet.Variant
	calls  []worksheet.Variant
}

func (r *stubRenderer) Format() string    { return "stub" }
func (r *stubRenderer) Extension() string { return ".txt" }

func (r *stubRenderer) Render(seq worksheet.Sequence, _ render.StyleSet, dest render.Destination) (*render.Result, error) {
	r.calls = append(r.calls, seq.Variant)
	if seq.Variant == r.failOn {
		return nil, errors.New("disk full")
	}
	path := dest.Base + r.Extension()
	if err := os.WriteFile(path, []byte(seq.Title()), 0o644); err != nil {
		return nil, err
	}
	return &render.Result{Paths: []string{path}, Pages: 1}, nil
}

func newTestService(r render.Renderer) *Service {
	s := NewService(r, logger.Nop())
	s.now = func() time.Time { return time.Date(2025, 10, 17, 9, 30, 0, 0, time.Local) }
	s.newID = func() string { return "sheet-1" }
	return s
}

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.OutDir = dir
	return opts
}

func TestGenerate_WritesBothDocuments(t *testing.T) {
	dir := t.TempDir()
	s := newTestService(render.NewMarkdown())

	out, err := s.Generate([]byte(exercise.SamplePayload), testOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, "sheet-1", out.SheetID)
	assert.Equal(t, 3, out.Document.Len())
	assert.Equal(t, []string{
		filepath.Join(dir, "Nomen_und_Artikel_practice_20251017_093000.md"),
		filepath.Join(dir, "Nomen_und_Artikel_solution_20251017_093000.md"),
	}, out.Paths())

	solution, err := os.ReadFile(out.Solution.Paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(solution), "Lösungsblatt")
	assert.Contains(t, string(solution), "`sheet-1`")
}

func TestGenerate_PrefixAndOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	opts := testOptions(dir)
	opts.Prefix = "klasse4"

	out, err := newTestService(render.NewMarkdown()).Generate([]byte(exercise.SamplePayload), opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "klasse4_practice_20251017_093000.md"), out.Practice.Paths[0])
}

func TestGenerate_RejectedPayloadWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "syntax",
			payload: `{"metadata": `,
			check: func(t *testing.T, err error) {
				var serr *exercise.SyntaxError
				assert.True(t, errors.As(err, &serr))
			},
		},
		{
			name:    "missing subject",
			payload: `{"metadata": {"topic": "T", "grade": "G"}, "exercises": []}`,
			check: func(t *testing.T, err error) {
				var verr *exercise.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "subject", verr.Field)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			stub := &stubRenderer{}

			out, err := newTestService(stub).Generate([]byte(tt.payload), testOptions(dir))
			assert.Nil(t, out)
			tt.check(t, err)

			assert.Empty(t, stub.calls)
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestGenerate_StrictMode(t *testing.T) {
	payload := []byte(`{"metadata": {"topic": "T", "grade": 4, "subject": "S"}, "exercises": []}`)

	opts := testOptions(t.TempDir())
	_, err := newTestService(&stubRenderer{}).Generate(payload, opts)
	require.NoError(t, err)

	opts.Strict = true
	_, err = newTestService(&stubRenderer{}).Generate(payload, opts)
	var serr *exercise.SchemaError
	assert.True(t, errors.As(err, &serr), "expected *SchemaError, got %v", err)
}

func TestGenerate_SolutionFailureReportsPractice(t *testing.T) {
	dir := t.TempDir()
	stub := &stubRenderer{failOn: worksheet.VariantSolution}

	out, err := newTestService(stub).Generate([]byte(exercise.SamplePayload), testOptions(dir))
	assert.Nil(t, out)

	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, worksheet.VariantSolution, rerr.Document)
	assert.Equal(t, []string{filepath.Join(dir, "Nomen_und_Artikel_practice_20251017_093000.txt")}, rerr.Completed)
	assert.EqualError(t, rerr.Err, "disk full")
	assert.Contains(t, err.Error(), "already written")
	assert.Equal(t, []worksheet.Variant{worksheet.VariantPractice, worksheet.VariantSolution}, stub.calls)
}

func TestGenerate_PracticeFailureStopsEarly(t *testing.T) {
	stub := &stubRenderer{failOn: worksheet.VariantPractice}

	_, err := newTestService(stub).Generate([]byte(exercise.SamplePayload), testOptions(t.TempDir()))

	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, worksheet.VariantPractice, rerr.Document)
	assert.Empty(t, rerr.Completed)
	assert.Equal(t, []worksheet.Variant{worksheet.VariantPractice}, stub.calls)
}

func TestGenerate_EnglishLabels(t *testing.T) {
	opts := testOptions(t.TempDir())
	opts.Labels = worksheet.English()

	out, err := newTestService(render.NewMarkdown()).Generate([]byte(exercise.SamplePayload), opts)
	require.NoError(t, err)

	practice, err := os.ReadFile(out.Practice.Paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(practice), "Practice Sheet")
	assert.Contains(t, string(practice), "**Date:**")
}
