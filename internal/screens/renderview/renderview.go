package renderview

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/exercise"
	"github.com/abhisek/worksheetgen/internal/generate"
	"github.com/abhisek/worksheetgen/internal/screen"
	"github.com/abhisek/worksheetgen/internal/ui/components"
	"github.com/abhisek/worksheetgen/internal/ui/layout"
	"github.com/abhisek/worksheetgen/internal/ui/theme"
	"github.com/abhisek/worksheetgen/internal/worksheet"
)

type renderDoneMsg struct {
	out *generate.Output
	err error
}

type checkDoneMsg struct {
	doc *exercise.Document
	err error
}

// source selects where the payload comes from.
type source int

const (
	sourceFile source = iota
	sourcePaste
)

// RenderScreen reads a payload from a file or from pasted text, and either
// checks it or writes both sheets from it.
type RenderScreen struct {
	svc    *generate.Service
	opts   generate.Options
	format string

	source  source
	path    components.TextInput
	paste   components.TextArea
	running bool
	out     *generate.Output
	doc     *exercise.Document
	err     error
}

var _ screen.Screen = (*RenderScreen)(nil)

// New creates the screen. format is only shown to the user; svc decides
// what is written.
func New(svc *generate.Service, opts generate.Options, format string) *RenderScreen {
	r := &RenderScreen{
		svc:    svc,
		opts:   opts,
		format: format,
		path:   components.NewTextInput("path to the AI response, e.g. antwort.json", false, 0),
		paste:  components.NewTextArea("Paste the AI response here", 10),
	}
	r.path.Focus()
	return r
}

func (r *RenderScreen) Init() tea.Cmd {
	return r.path.Focus()
}

func (r *RenderScreen) Title() string {
	return "Render Worksheet"
}

func (r *RenderScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if r.source == sourceFile {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Render"},
			layout.KeyHint{Key: "Tab", Description: "Paste instead"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+R", Description: "Render"},
			layout.KeyHint{Key: "Tab", Description: "Use a file"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: "Check"},
		layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (r *RenderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case renderDoneMsg:
		r.running = false
		r.out, r.err = msg.out, msg.err
		if r.source == sourceFile {
			r.path.Submit(msg.err == nil)
		}
		return r, nil

	case checkDoneMsg:
		r.running = false
		r.doc, r.err = msg.doc, msg.err
		if r.source == sourceFile {
			r.path.Submit(msg.err == nil)
		}
		return r, nil

	case tea.KeyMsg:
		if r.running {
			return r, nil
		}
		switch msg.String() {
		case "tab":
			return r, r.toggleSource()
		case "ctrl+r":
			return r, r.start(false)
		case "ctrl+l":
			return r, r.start(true)
		case "enter":
			if r.source == sourceFile {
				return r, r.start(false)
			}
		}
	}

	var cmd tea.Cmd
	if r.source == sourceFile {
		r.path, cmd = r.path.Update(msg)
	} else {
		r.paste, cmd = r.paste.Update(msg)
	}
	return r, cmd
}

func (r *RenderScreen) toggleSource() tea.Cmd {
	r.out, r.doc, r.err = nil, nil, nil
	if r.source == sourceFile {
		r.source = sourcePaste
		r.path.Blur()
		return r.paste.Focus()
	}
	r.source = sourceFile
	r.paste.Blur()
	return r.path.Focus()
}

// payload returns a reader for the current source, or an error when the
// source is empty.
func (r *RenderScreen) payload() (func() ([]byte, error), error) {
	if r.source == sourcePaste {
		text := r.paste.Value()
		if strings.TrimSpace(text) == "" {
			return nil, errors.New("paste the AI response first")
		}
		return func() ([]byte, error) { return []byte(text), nil }, nil
	}

	path := strings.TrimSpace(r.path.Value())
	if path == "" {
		return nil, errors.New("enter the path of the saved AI response")
	}
	return func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		return data, nil
	}, nil
}

// start checks the payload when checkOnly is set and renders it otherwise.
func (r *RenderScreen) start(checkOnly bool) tea.Cmd {
	r.out, r.doc = nil, nil
	read, err := r.payload()
	if err != nil {
		r.err = err
		return nil
	}
	r.running = true
	r.err = nil

	svc, opts := r.svc, r.opts
	if checkOnly {
		return func() tea.Msg {
			data, err := read()
			if err != nil {
				return checkDoneMsg{err: err}
			}
			doc, err := svc.Load(data, opts.Strict)
			return checkDoneMsg{doc: doc, err: err}
		}
	}
	return func() tea.Msg {
		data, err := read()
		if err != nil {
			return renderDoneMsg{err: err}
		}
		out, err := svc.Generate(data, opts)
		return renderDoneMsg{out: out, err: err}
	}
}

func (r *RenderScreen) View(width, height int) string {
	contentWidth := min(width-4, 100)
	var sections []string

	if r.source == sourceFile {
		sections = append(sections,
			theme.Subtitle.Render("Save the AI's JSON answer to a file, then enter its path."),
			"",
			theme.Label.Render("Payload  ")+r.path.View(),
		)
	} else {
		sections = append(sections,
			theme.Subtitle.Render("Paste the AI's JSON answer below."),
			"",
			r.paste.View(contentWidth),
		)
	}
	sections = append(sections,
		theme.Hint.Render(fmt.Sprintf("Format %s, output directory %s", r.format, r.opts.OutDir)),
		"",
	)

	switch {
	case r.running:
		sections = append(sections, theme.Hint.Render("Working..."))
	case r.err != nil:
		sections = append(sections, theme.Incorrect.Render(describeError(r.err)))
	case r.out != nil:
		sections = append(sections, theme.Correct.Render(fmt.Sprintf(
			"Wrote %d exercises (sheet %s):", r.out.Document.Len(), r.out.SheetID)))
		for _, p := range r.out.Paths() {
			sections = append(sections, theme.Body.Render("  "+p))
		}
	case r.doc != nil:
		m := r.doc.Metadata
		sections = append(sections, theme.Correct.Render(fmt.Sprintf(
			"Valid: %d exercises (%s, %s, %s)", r.doc.Len(), m.Topic, m.Grade, m.Subject)))
		for _, g := range worksheet.GroupBySubtopic(r.doc.Exercises, r.opts.Labels.General) {
			sections = append(sections, theme.Body.Render(fmt.Sprintf("  %-24s %d", g.Label, len(g.Records))))
		}
	}

	content := lipgloss.NewStyle().
		Width(contentWidth).
		Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func describeError(err error) string {
	var verr *exercise.ValidationError
	var serr *exercise.SyntaxError
	var rerr *generate.RenderError
	switch {
	case errors.As(err, &verr):
		return "The payload was rejected: " + verr.Error()
	case errors.As(err, &serr):
		return "Could not read the payload: " + serr.Error()
	case errors.As(err, &rerr):
		return "Writing failed: " + rerr.Error()
	}
	return err.Error()
}
