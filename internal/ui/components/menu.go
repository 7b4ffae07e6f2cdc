package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int

	// Height limits how many items are shown at once; 0 shows all.
	Height int
	offset int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	m.scroll()
	return m, nil
}

// Select moves the cursor to the first item with the given label.
func (m *Menu) Select(label string) {
	for i, item := range m.Items {
		if item.Label == label && !item.Disabled {
			m.Selected = i
			m.scroll()
			return
		}
	}
}

// SetHeight limits the visible items and keeps the cursor in view.
func (m *Menu) SetHeight(h int) {
	m.Height = h
	m.scroll()
}

func (m *Menu) scroll() {
	if m.Height <= 0 {
		m.offset = 0
		return
	}
	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+m.Height {
		m.offset = m.Selected - m.Height + 1
	}
}

// View renders the menu.
func (m Menu) View() string {
	start, end := 0, len(m.Items)
	if m.Height > 0 && m.Height < len(m.Items) {
		start = m.offset
		end = min(start+m.Height, len(m.Items))
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		item := m.Items[i]
		switch {
		case i == m.Selected:
			sb.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + item.Label))
		case item.Disabled:
			sb.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("    " + item.Label))
		default:
			sb.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + item.Label))
		}
		sb.WriteString("\n")
	}
	if end < len(m.Items) {
		sb.WriteString(theme.Hint.Render("    ↓ more") + "\n")
	}
	return sb.String()
}
