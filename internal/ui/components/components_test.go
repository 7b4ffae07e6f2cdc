package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type pickedMsg string

func TestMenu_SkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Disabled: true},
		{Label: "second"},
		{Label: "third", Disabled: true},
		{Label: "fourth"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("a") } }},
		{Label: "b", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("b") } }},
	})
	m, _ = m.Update(keyPress('j'))
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("b"), cmd())
}

func TestMenu_SelectAndScroll(t *testing.T) {
	items := make([]MenuItem, 10)
	for i := range items {
		items[i] = MenuItem{Label: string(rune('a' + i))}
	}
	m := NewMenu(items)
	m.Select("h")
	m.SetHeight(3)
	assert.Equal(t, 7, m.Selected)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "▸ h")
	assert.NotContains(t, view, "a\n")
	assert.Contains(t, view, "more")
}

func TestChecklist_Toggle(t *testing.T) {
	c := NewChecklist([]string{"Multiple Choice", "Lückentext", "Offene Fragen"}, "Offene Fragen")
	assert.Equal(t, []string{"Offene Fragen"}, c.Checked())

	// Blurred lists ignore keys.
	c, _ = c.Update(keyPress('x'))
	assert.Equal(t, []string{"Offene Fragen"}, c.Checked())

	c.Focus()
	c, _ = c.Update(keyPress('x'))
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyDown))
	assert.True(t, c.AtBottom())
	c, _ = c.Update(keyPress('x'))

	assert.Equal(t, []string{"Multiple Choice"}, c.Checked())
	assert.Contains(t, ansi.Strip(c.View()), "[x] Multiple Choice")
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("5", true, 3)
	ti.Focus()

	for _, r := range "4a2" {
		ti, _ = ti.Update(keyPress(r))
	}
	assert.Equal(t, "42", ti.Value())

	n, err := ti.NumericValue()
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestTextInput_BlurredIgnoresKeys(t *testing.T) {
	ti := NewTextInput("topic", false, 0)
	ti, _ = ti.Update(keyPress('a'))
	assert.Empty(t, ti.Value())

	ti.SetValue("Bruchrechnung")
	ti.Submit(false)
	assert.Contains(t, ansi.Strip(ti.View()), "✗")
}

func TestButton_PressOnlyWhenActive(t *testing.T) {
	pressed := 0
	b := NewButton("Build prompt", false, func() tea.Cmd {
		pressed++
		return nil
	})

	b.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 0, pressed)

	b.Active = true
	b.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, pressed)
	assert.Contains(t, ansi.Strip(b.View()), "▸ Build prompt")
}

func TestTextArea_PasteKeepsLines(t *testing.T) {
	ta := NewTextArea("paste here", 5)
	payload := "{\n  \"a\": 1\n}"

	ta, _ = ta.Update(tea.PasteMsg{Content: payload})
	assert.Empty(t, ta.Value(), "blurred area must ignore pastes")

	ta.Focus()
	require.True(t, ta.Focused())
	ta, _ = ta.Update(tea.PasteMsg{Content: payload})
	assert.Equal(t, payload, ta.Value())

	ta.Blur()
	assert.Contains(t, ansi.Strip(ta.View(40)), `"a": 1`)
}
