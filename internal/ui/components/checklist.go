package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/ui/theme"
)

// Checklist is a vertical list of options that can each be toggled.
type Checklist struct {
	Options []string
	Cursor  int
	checked []bool
	focused bool
}

// NewChecklist creates a checklist with the given options checked.
func NewChecklist(options []string, checked ...string) Checklist {
	c := Checklist{
		Options: options,
		checked: make([]bool, len(options)),
	}
	for i, opt := range options {
		for _, want := range checked {
			if opt == want {
				c.checked[i] = true
			}
		}
	}
	return c
}

// Focus gives the checklist keyboard control.
func (c *Checklist) Focus() { c.focused = true }

// Blur releases keyboard control.
func (c *Checklist) Blur() { c.focused = false }

// Focused reports whether the checklist has keyboard control.
func (c Checklist) Focused() bool { return c.focused }

// AtTop reports whether the cursor is on the first option.
func (c Checklist) AtTop() bool { return c.Cursor == 0 }

// AtBottom reports whether the cursor is on the last option.
func (c Checklist) AtBottom() bool { return c.Cursor >= len(c.Options)-1 }

// Update moves the cursor with up/down and toggles with space or x.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		if c.Cursor < len(c.checked) {
			c.checked[c.Cursor] = !c.checked[c.Cursor]
		}
	}
	return c, nil
}

// Checked returns the checked options in list order.
func (c Checklist) Checked() []string {
	var out []string
	for i, opt := range c.Options {
		if c.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var sb strings.Builder
	for i, opt := range c.Options {
		box := "[ ]"
		if c.checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if c.focused && i == c.Cursor {
			prefix = "▸ "
		}
		line := prefix + box + " " + opt

		switch {
		case c.focused && i == c.Cursor:
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		case c.checked[i]:
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(line))
		default:
			sb.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
