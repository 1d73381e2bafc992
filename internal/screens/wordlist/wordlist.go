package wordlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/screens/wordset"
	"github.com/abhisek/vocabdrill/internal/ui/layout"
	"github.com/abhisek/vocabdrill/internal/ui/theme"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// WordListScreen shows every word saved for a date.
type WordListScreen struct {
	words  *wordset.State
	offset int
	height int
}

var _ screen.Screen = (*WordListScreen)(nil)
var _ screen.KeyHintProvider = (*WordListScreen)(nil)
var _ screen.Closer = (*WordListScreen)(nil)

// New creates a WordListScreen.
func New(words *wordset.State) *WordListScreen {
	return &WordListScreen{words: words}
}

func (s *WordListScreen) Init() tea.Cmd {
	return s.words.Start()
}

func (s *WordListScreen) Date() string {
	return s.words.Date
}

func (s *WordListScreen) Title() string {
	return "Words"
}

func (s *WordListScreen) Close() {
	s.words.Close()
}

func (s *WordListScreen) KeyHints() []layout.KeyHint {
	if !s.words.Ready() {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, cmd := s.words.Handle(msg); done || cmd != nil {
		if done {
			s.offset = 0
		}
		return s, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.words.Loading() {
		return s, nil
	}
	if !s.words.Ready() {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch kmsg.String() {
	case "up", "k":
		s.offset = max(0, s.offset-1)
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset = max(0, s.offset-max(1, s.height-1))
	case "pgdown", "space", " ":
		s.offset += max(1, s.height-1)
	case "home", "g":
		s.offset = 0
	case "r", "R":
		return s, s.words.Start()
	}
	return s, nil
}

func (s *WordListScreen) View(width, height int) string {
	s.height = height
	if !s.words.Ready() {
		return s.words.View(width, height)
	}

	cardWidth := min(width-4, 80)
	lines := []string{
		theme.Subtitle.Width(width).Render(fmt.Sprintf("%d words for %s",
			len(s.words.Words), vocab.DisplayDate(s.words.Date))),
		"",
	}
	for i, w := range s.words.Words {
		card := renderWord(i+1, w, cardWidth)
		for _, l := range strings.Split(card, "\n") {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, l))
		}
	}

	maxOffset := max(0, len(lines)-height)
	s.offset = min(s.offset, maxOffset)
	end := min(len(lines), s.offset+height)
	return strings.Join(lines[s.offset:end], "\n")
}

func renderWord(n int, w vocab.Word, width int) string {
	head := theme.Selected.Render(fmt.Sprintf("%d. %s", n, w.Word))
	if w.PartOfSpeech != "" {
		head += "  " + theme.Hint.Render(w.PartOfSpeech)
	}

	body := []string{head, theme.Body.Render(w.Meaning)}
	if len(w.Synonyms) > 0 {
		body = append(body, theme.Hint.Render("Synonyms: "+w.Synonyms.String()))
	}
	if w.Example != "" {
		body = append(body, theme.Hint.Render("“"+w.Example+"”"))
	}

	return theme.Card.Width(width).Render(strings.Join(body, "\n"))
}
