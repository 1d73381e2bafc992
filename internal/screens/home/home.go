package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/screens/modes"
	"github.com/abhisek/vocabdrill/internal/screens/wordlist"
	"github.com/abhisek/vocabdrill/internal/ui/components"
	"github.com/abhisek/vocabdrill/internal/ui/layout"
	"github.com/abhisek/vocabdrill/internal/ui/theme"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// UpdateAvailableMsg tells the home screen a newer release exists.
type UpdateAvailableMsg struct {
	Latest string
}

// HomeScreen picks the practice date and what to do with it.
type HomeScreen struct {
	deps  modes.Deps
	date  string
	today string

	menu       components.Menu
	menuLabels []string

	input    components.TextInput
	editing  bool
	inputErr string

	latest string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Capturer = (*HomeScreen)(nil)

// New creates the home screen with date selected. An empty date selects
// today.
func New(deps modes.Deps, date string, now time.Time) *HomeScreen {
	today := vocab.Today(now)
	if date == "" {
		date = today
	}

	h := &HomeScreen{
		deps:       deps,
		date:       date,
		today:      today,
		menuLabels: []string{"VIEW WORDS", "PRACTICE", "QUIT"},
		input:      components.NewTextInput("Go to date", "YYYY-MM-DD", len(vocab.DateLayout)),
	}
	h.input.Blur()

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			next := wordlist.New(h.deps.WordSet(h.date))
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			next := modes.New(h.deps, h.date)
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

// Date is the selected practice date, YYYY-MM-DD.
func (h *HomeScreen) Date() string {
	return h.date
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) CapturingInput() bool {
	return h.editing
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Enter on empty", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Day"},
		{Key: "T", Description: "Today"},
		{Key: "/", Description: "Type date"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateAvailableMsg:
		h.latest = msg.Latest
		return h, nil
	case tea.KeyMsg:
		if h.editing {
			return h.handleDateInput(msg)
		}
		switch msg.String() {
		case "left", "h":
			h.date = vocab.ShiftDate(h.date, -1)
			return h, nil
		case "right", "l":
			h.date = vocab.ShiftDate(h.date, 1)
			return h, nil
		case "t", "T":
			h.date = h.today
			return h, nil
		case "/":
			h.editing = true
			h.inputErr = ""
			h.input.Reset()
			return h, h.input.Focus()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) handleDateInput(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}

	value := strings.TrimSpace(h.input.Value())
	if value != "" {
		if _, err := vocab.ParseDate(value); err != nil {
			h.inputErr = "Use the form YYYY-MM-DD"
			return h, nil
		}
		h.date = value
	}
	h.editing = false
	h.inputErr = ""
	h.input.Blur()
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.date, h.today), cw))
	}
	sections = append(sections, renderDateBar(h.date, h.today, cw))

	if h.editing {
		in := h.input.View()
		if h.inputErr != "" {
			in += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(h.inputErr)
		}
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, in))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.latest != "" {
		sections = append(sections, renderUpdateNote(h.latest, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
