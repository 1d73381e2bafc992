package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/session"
	"github.com/abhisek/vocabdrill/internal/ui/layout"
	"github.com/abhisek/vocabdrill/internal/ui/theme"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// SummaryScreen is the completion dialog shown after a practice session.
type SummaryScreen struct {
	summary session.Summary
	retry   func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. retry builds a fresh session of the
// same kind; nil disables "practice again".
func New(summary session.Summary, retry func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, retry: retry}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Date() string {
	return s.summary.Date
}

func (s *SummaryScreen) Title() string {
	return "Session Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Practice again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.retry != nil {
				next := s.retry()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "All words completed!")
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%s · %s", sum.Mode.Label(), vocab.DisplayDate(sum.Date)))
	b.WriteString("\n")

	if sum.Mode == session.ModeDragDrop {
		center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("Score: %d / %d", sum.Correct, sum.Total))
		return b.String()
	}

	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Words: %d        Accuracy: %.0f%%", sum.Total, sum.Accuracy()*100))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(0, min(width-8, 40))))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"Correct", sum.Correct, theme.Correct},
		{"Partial", sum.Partial, theme.Partial},
		{"Incorrect", sum.Incorrect, theme.Incorrect},
		{"Passed", sum.Passed, theme.Hint},
	}
	for _, r := range rows {
		line := r.style.Render(fmt.Sprintf("%-10s", r.label)) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%4d", r.count))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
