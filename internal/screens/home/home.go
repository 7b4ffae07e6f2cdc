package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/catalog"
	"github.com/abhisek/worksheetgen/internal/generate"
	"github.com/abhisek/worksheetgen/internal/router"
	"github.com/abhisek/worksheetgen/internal/screen"
	"github.com/abhisek/worksheetgen/internal/screens/form"
	"github.com/abhisek/worksheetgen/internal/screens/renderview"
	"github.com/abhisek/worksheetgen/internal/ui/components"
	"github.com/abhisek/worksheetgen/internal/ui/theme"
)

// Deps are the services the home menu hands to the screens it opens.
type Deps struct {
	Catalog   *catalog.Catalog
	Service   *generate.Service
	Options   generate.Options
	Format    string
	Clipboard func(string) error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Create a prompt", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: form.New(deps.Catalog, deps.Clipboard)}
			}
		}},
		{Label: "Render a worksheet", Disabled: deps.Service == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: renderview.New(deps.Service, deps.Options, deps.Format)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	steps := []string{
		"1. Create a prompt and paste it into your AI chat.",
		"2. Save the JSON answer to a file or paste it.",
		"3. Render it into a practice sheet and a solution sheet.",
	}

	sections := []string{
		theme.Title.Render("Worksheet Generator"),
		theme.Subtitle.Render(strings.Join(steps, "\n")),
		theme.Card.Render(h.menu.View()),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
