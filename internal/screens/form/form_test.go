package form

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/worksheetgen/internal/catalog"
	"github.com/abhisek/worksheetgen/internal/prompt"
	"github.com/abhisek/worksheetgen/internal/router"
	"github.com/abhisek/worksheetgen/internal/screens/picker"
	"github.com/abhisek/worksheetgen/internal/screens/promptview"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(f *FormScreen, s string) {
	for _, r := range s {
		f.Update(keyPress(r))
	}
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg
}

func TestEnterOnGradeOpensPicker(t *testing.T) {
	f := New(catalog.Default(), nil)

	_, cmd := f.Update(specialKey(tea.KeyEnter))
	msg := pushed(t, cmd)
	p, ok := msg.Screen.(*picker.PickerScreen)
	if !ok {
		t.Fatalf("expected picker screen, got %T", msg.Screen)
	}
	if p.Title() != "Grade" {
		t.Errorf("expected picker title 'Grade', got %q", p.Title())
	}
}

func TestPickedSubjectReloadsExerciseTypes(t *testing.T) {
	cat := catalog.Default()
	f := New(cat, nil)

	f.Update(picker.PickedMsg{Field: prompt.FieldGrade, Value: "4. Klasse"})
	if f.focus != fieldSubject {
		t.Errorf("expected focus on subject after grade, got %d", f.focus)
	}

	f.Update(picker.PickedMsg{Field: prompt.FieldSubject, Value: "Deutsch"})
	if f.focus != fieldTopic {
		t.Errorf("expected focus on topic after subject, got %d", f.focus)
	}
	want := cat.TypesFor("Deutsch")
	if strings.Join(f.types.Options, "|") != strings.Join(want, "|") {
		t.Errorf("expected types %v, got %v", want, f.types.Options)
	}
}

func TestSubmitBuildsPrompt(t *testing.T) {
	f := New(catalog.Default(), nil)

	f.Update(picker.PickedMsg{Field: prompt.FieldGrade, Value: "4. Klasse"})
	f.Update(picker.PickedMsg{Field: prompt.FieldSubject, Value: "Deutsch"})
	typeText(f, "Nomen")

	f.Update(specialKey(tea.KeyTab))
	typeText(f, "Plural, Artikel")

	f.Update(specialKey(tea.KeyTab))
	if f.focus != fieldTypes {
		t.Fatalf("expected focus on exercise types, got %d", f.focus)
	}
	f.Update(keyPress('x'))

	f.Update(specialKey(tea.KeyTab))
	f.Update(specialKey(tea.KeyTab))
	if f.focus != fieldSubmit {
		t.Fatalf("expected focus on submit, got %d", f.focus)
	}

	p := f.Params()
	if p.Topic != "Nomen" || p.Count != 5 {
		t.Errorf("unexpected params %+v", p)
	}
	if len(p.Subtopics) != 2 || p.Subtopics[1] != "Artikel" {
		t.Errorf("unexpected subtopics %v", p.Subtopics)
	}
	if len(p.ExerciseTypes) != 1 || p.ExerciseTypes[0] != "Multiple Choice" {
		t.Errorf("unexpected exercise types %v", p.ExerciseTypes)
	}

	_, cmd := f.Update(specialKey(tea.KeyEnter))
	msg := pushed(t, cmd)
	if _, ok := msg.Screen.(*promptview.PromptViewScreen); !ok {
		t.Fatalf("expected prompt view, got %T", msg.Screen)
	}
	if f.errMsg != "" {
		t.Errorf("expected no error, got %q", f.errMsg)
	}
}

func TestSubmitReportsFirstInvalidField(t *testing.T) {
	f := New(catalog.Default(), nil)
	f.setFocus(fieldSubmit)

	_, cmd := f.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		if _, ok := cmd().(router.PushScreenMsg); ok {
			t.Fatal("invalid form must not open the prompt view")
		}
	}
	if f.focus != fieldGrade {
		t.Errorf("expected focus on grade, got %d", f.focus)
	}
	if !strings.Contains(f.errMsg, prompt.FieldGrade) {
		t.Errorf("expected error naming grade, got %q", f.errMsg)
	}
}

func TestCountAcceptsDigitsOnly(t *testing.T) {
	f := New(catalog.Default(), nil)
	f.setFocus(fieldCount)
	f.count.SetValue("")

	typeText(f, "1x2")
	if got := f.count.Value(); got != "12" {
		t.Errorf("expected count '12', got %q", got)
	}
}

func TestFocusWraps(t *testing.T) {
	f := New(catalog.Default(), nil)

	f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if f.focus != fieldSubmit {
		t.Errorf("expected shift+tab from first field to wrap to submit, got %d", f.focus)
	}
	f.Update(specialKey(tea.KeyTab))
	if f.focus != fieldGrade {
		t.Errorf("expected tab from submit to wrap to grade, got %d", f.focus)
	}
}
