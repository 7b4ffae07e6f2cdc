package picker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestStartsOnCurrentValue(t *testing.T) {
	p := New("grade", "Grade", []string{"1. Klasse", "2. Klasse", "3. Klasse"}, "2. Klasse")
	if p.menu.Selected != 1 {
		t.Errorf("expected selection 1, got %d", p.menu.Selected)
	}

	view := ansi.Strip(p.View(80, 20))
	if !strings.Contains(view, "▸ 2. Klasse") {
		t.Errorf("expected current value highlighted, got:\n%s", view)
	}
}

func TestEnterChooses(t *testing.T) {
	p := New("subject", "Subject", []string{"Deutsch", "Mathematik"}, "")

	p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after enter")
	}
	if p.menu.Selected != 1 {
		t.Errorf("expected selection 1, got %d", p.menu.Selected)
	}
}
