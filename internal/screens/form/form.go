package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/catalog"
	"github.com/abhisek/worksheetgen/internal/prompt"
	"github.com/abhisek/worksheetgen/internal/router"
	"github.com/abhisek/worksheetgen/internal/screen"
	"github.com/abhisek/worksheetgen/internal/screens/picker"
	"github.com/abhisek/worksheetgen/internal/screens/promptview"
	"github.com/abhisek/worksheetgen/internal/ui/components"
	"github.com/abhisek/worksheetgen/internal/ui/layout"
	"github.com/abhisek/worksheetgen/internal/ui/theme"
)

// Form fields in focus order.
const (
	fieldGrade = iota
	fieldSubject
	fieldTopic
	fieldSubtopics
	fieldTypes
	fieldCount
	fieldSubmit
	numFields
)

const labelWidth = 16

// FormScreen collects the prompt parameters.
type FormScreen struct {
	catalog *catalog.Catalog
	copyFn  func(string) error

	grade   string
	subject string

	topic     components.TextInput
	subtopics components.TextInput
	types     components.Checklist
	count     components.TextInput

	focus  int
	errMsg string
}

var _ screen.Screen = (*FormScreen)(nil)

// New creates an empty form. copyFn writes the finished prompt to the
// clipboard and may be nil.
func New(cat *catalog.Catalog, copyFn func(string) error) *FormScreen {
	f := &FormScreen{
		catalog:   cat,
		copyFn:    copyFn,
		topic:     components.NewTextInput("e.g. Bruchrechnung", false, 80),
		subtopics: components.NewTextInput("comma separated, optional", false, 200),
		count:     components.NewTextInput(strconv.Itoa(cat.Questions.Default), true, 2),
		types:     components.NewChecklist(cat.DefaultExerciseTypes),
	}
	f.count.SetValue(strconv.Itoa(cat.Questions.Default))
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return "New Prompt"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Shift+Tab", Description: "Previous"},
	}
	switch f.focus {
	case fieldGrade, fieldSubject:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Choose"})
	case fieldTypes:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case fieldSubmit:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Build prompt"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case picker.PickedMsg:
		return f, f.applyPick(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab":
			return f, f.setFocus(f.focus - 1)
		case "up":
			if f.focus != fieldTypes || f.types.AtTop() {
				return f, f.setFocus(f.focus - 1)
			}
		case "down":
			if f.focus != fieldTypes || f.types.AtBottom() {
				return f, f.setFocus(f.focus + 1)
			}
		case "enter":
			return f, f.enter()
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTopic:
		f.topic, cmd = f.topic.Update(msg)
	case fieldSubtopics:
		f.subtopics, cmd = f.subtopics.Update(msg)
	case fieldTypes:
		f.types, cmd = f.types.Update(msg)
	case fieldCount:
		f.count, cmd = f.count.Update(msg)
	}
	return f, cmd
}

func (f *FormScreen) enter() tea.Cmd {
	switch f.focus {
	case fieldGrade:
		return push(picker.New(prompt.FieldGrade, "Grade", f.catalog.Grades, f.grade))
	case fieldSubject:
		return push(picker.New(prompt.FieldSubject, "Subject", f.catalog.SubjectNames(), f.subject))
	case fieldSubmit:
		return f.submit()
	case fieldTypes:
		return nil
	default:
		return f.setFocus(f.focus + 1)
	}
}

func (f *FormScreen) applyPick(msg picker.PickedMsg) tea.Cmd {
	switch msg.Field {
	case prompt.FieldGrade:
		f.grade = msg.Value
		return f.setFocus(fieldSubject)
	case prompt.FieldSubject:
		if msg.Value != f.subject {
			f.subject = msg.Value
			f.types = components.NewChecklist(f.catalog.TypesFor(msg.Value))
		}
		return f.setFocus(fieldTopic)
	}
	return nil
}

func (f *FormScreen) setFocus(i int) tea.Cmd {
	f.focus = (i + numFields) % numFields

	f.topic.Blur()
	f.subtopics.Blur()
	f.count.Blur()
	f.types.Blur()

	switch f.focus {
	case fieldTopic:
		return f.topic.Focus()
	case fieldSubtopics:
		return f.subtopics.Focus()
	case fieldCount:
		return f.count.Focus()
	case fieldTypes:
		f.types.Focus()
	}
	return nil
}

// Params returns the current form values.
func (f *FormScreen) Params() prompt.Params {
	count, err := f.count.NumericValue()
	if err != nil {
		count = 0
	}
	return prompt.Params{
		Grade:         f.grade,
		Subject:       f.subject,
		Topic:         strings.TrimSpace(f.topic.Value()),
		Subtopics:     prompt.ParseSubtopics(f.subtopics.Value()),
		ExerciseTypes: f.types.Checked(),
		Count:         count,
	}
}

func (f *FormScreen) submit() tea.Cmd {
	p := f.Params()
	if err := p.Validate(f.catalog); err != nil {
		f.errMsg = err.Error()
		var perr *prompt.ParamError
		if errors.As(err, &perr) {
			return f.focusInvalid(perr.Field)
		}
		return nil
	}
	f.errMsg = ""
	f.topic.Submit(true)
	f.count.Submit(true)
	return push(promptview.New(prompt.Build(p, f.catalog), p, f.copyFn))
}

func (f *FormScreen) focusInvalid(field string) tea.Cmd {
	switch field {
	case prompt.FieldGrade:
		return f.setFocus(fieldGrade)
	case prompt.FieldSubject:
		return f.setFocus(fieldSubject)
	case prompt.FieldTopic:
		f.topic.Submit(false)
		return f.setFocus(fieldTopic)
	case prompt.FieldExerciseTypes:
		return f.setFocus(fieldTypes)
	case prompt.FieldCount:
		f.count.Submit(false)
		return f.setFocus(fieldCount)
	}
	return nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (f *FormScreen) View(width, height int) string {
	var rows []string

	rows = append(rows, f.row(fieldGrade, "Grade", choice(f.grade)))
	rows = append(rows, f.row(fieldSubject, "Subject", choice(f.subject)))
	rows = append(rows, f.row(fieldTopic, "Topic", f.topic.View()))
	rows = append(rows, f.row(fieldSubtopics, "Sub-topics", f.subtopics.View()))
	rows = append(rows, f.row(fieldTypes, "Exercise types", ""))
	rows = append(rows, indent(f.types.View(), labelWidth+2))
	q := f.catalog.Questions
	rows = append(rows, f.row(fieldCount, "Questions", f.count.View()+
		theme.Hint.Render(fmt.Sprintf("  per exercise, %d-%d", q.Min, q.Max))))

	rows = append(rows, "")
	btn := components.NewButton("Build prompt", f.focus == fieldSubmit, nil)
	rows = append(rows, strings.Repeat(" ", labelWidth+2)+btn.View())

	if f.errMsg != "" {
		rows = append(rows, "", theme.Incorrect.Render("  "+f.errMsg))
	}

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (f *FormScreen) row(field int, label, value string) string {
	marker := "  "
	style := theme.Label
	if f.focus == field {
		marker = "▸ "
		style = theme.Focused
	}
	return style.Render(marker+fmt.Sprintf("%-*s", labelWidth, label)) + value
}

func choice(v string) string {
	if v == "" {
		return theme.Hint.Render("press Enter to choose")
	}
	return theme.Body.Render(v)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
