package picker

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/router"
	"github.com/abhisek/worksheetgen/internal/screen"
	"github.com/abhisek/worksheetgen/internal/ui/components"
	"github.com/abhisek/worksheetgen/internal/ui/layout"
	"github.com/abhisek/worksheetgen/internal/ui/theme"
)

// PickedMsg is sent to the screen below the picker after a choice.
type PickedMsg struct {
	Field string
	Value string
}

// PickerScreen lets the user choose one value from a list.
type PickerScreen struct {
	field string
	title string
	menu  components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)

// New creates a picker for field. current, when present in options, starts
// selected.
func New(field, title string, options []string, current string) *PickerScreen {
	items := make([]components.MenuItem, len(options))
	for i, opt := range options {
		items[i] = components.MenuItem{
			Label:  opt,
			Action: pick(field, opt),
		}
	}
	menu := components.NewMenu(items)
	menu.Select(current)
	return &PickerScreen{field: field, title: title, menu: menu}
}

func pick(field, value string) func() tea.Cmd {
	return func() tea.Cmd {
		return tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return PickedMsg{Field: field, Value: value} },
		)
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	p.menu.SetHeight(max(height-4, 3))
	content := theme.Title.Render(p.title) + "\n\n" + p.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (p *PickerScreen) Title() string {
	return p.title
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Cancel"},
	}
}
