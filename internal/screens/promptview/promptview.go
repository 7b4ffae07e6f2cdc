package promptview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetgen/internal/prompt"
	"github.com/abhisek/worksheetgen/internal/screen"
	"github.com/abhisek/worksheetgen/internal/ui/layout"
	"github.com/abhisek/worksheetgen/internal/ui/theme"
)

type copiedMsg struct {
	err error
}

// PromptViewScreen shows the assembled prompt and copies it on request.
type PromptViewScreen struct {
	text   string
	lines  []string
	dist   prompt.Distribution
	copyFn func(string) error

	offset int
	height int
	status string
	failed bool
}

var _ screen.Screen = (*PromptViewScreen)(nil)

// New creates a view of text. copyFn may be nil when no clipboard is available.
func New(text string, p prompt.Params, copyFn func(string) error) *PromptViewScreen {
	return &PromptViewScreen{
		text:   text,
		lines:  strings.Split(text, "\n"),
		dist:   prompt.Distribute(p),
		copyFn: copyFn,
	}
}

func (s *PromptViewScreen) Init() tea.Cmd {
	return nil
}

func (s *PromptViewScreen) Title() string {
	return "Prompt"
}

func (s *PromptViewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "c", Description: "Copy"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PromptViewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			s.status = "Copy failed: " + msg.err.Error()
			s.failed = true
		} else {
			s.status = "Prompt copied to the clipboard. Paste it into your AI chat."
			s.failed = false
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return s, s.copyCmd()
		case "up", "k":
			s.scroll(-1)
		case "down", "j":
			s.scroll(1)
		case "pgup":
			s.scroll(-s.page())
		case "pgdown", "space", " ":
			s.scroll(s.page())
		case "home", "g":
			s.offset = 0
		case "end", "G":
			s.scroll(len(s.lines))
		}
	}
	return s, nil
}

func (s *PromptViewScreen) copyCmd() tea.Cmd {
	if s.copyFn == nil {
		return func() tea.Msg { return copiedMsg{err: fmt.Errorf("no clipboard available")} }
	}
	copyFn, text := s.copyFn, s.text
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

func (s *PromptViewScreen) page() int {
	return max(s.height, 1)
}

func (s *PromptViewScreen) scroll(n int) {
	maxOffset := max(len(s.lines)-s.page(), 0)
	s.offset = min(max(s.offset+n, 0), maxOffset)
}

func (s *PromptViewScreen) View(width, height int) string {
	summary := theme.Subtitle.Render(fmt.Sprintf("  %d exercises, %d questions in total",
		s.dist.Exercises, s.dist.Questions))

	var status string
	switch {
	case s.status == "":
		status = theme.Hint.Render("  Press c to copy the prompt.")
	case s.failed:
		status = theme.Incorrect.Render("  " + s.status)
	default:
		status = theme.Correct.Render("  " + s.status)
	}

	// summary, status and the card border
	s.height = max(height-6, 1)
	s.scroll(0)

	end := min(s.offset+s.height, len(s.lines))
	body := strings.Join(s.lines[s.offset:end], "\n")

	card := theme.Card.
		Width(width - 2).
		Padding(0, 1).
		Render(theme.Body.Render(body))

	return lipgloss.JoinVertical(lipgloss.Left, summary, card, status)
}
