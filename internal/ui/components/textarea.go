package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line pasted input.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a blurred text area of height rows with no line
// numbers and no limit on characters or lines.
func NewTextArea(placeholder string, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(height)
	ta.Blur()
	return TextArea{Model: ta}
}

// Update handles keys and pastes while focused.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area at width columns.
func (t *TextArea) View(width int) string {
	if width > 0 && t.Model.Width() != width {
		t.Model.SetWidth(width)
	}
	return t.Model.View()
}

// Focus starts editing.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur stops editing.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// Focused reports whether the area takes input.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}
