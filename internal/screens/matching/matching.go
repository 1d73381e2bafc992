package matching

import (
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/paginator"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/config"
	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/screens/summary"
	"github.com/abhisek/vocabdrill/internal/screens/wordset"
	sess "github.com/abhisek/vocabdrill/internal/session"
	"github.com/abhisek/vocabdrill/internal/ui/components"
	"github.com/abhisek/vocabdrill/internal/ui/layout"
	"github.com/abhisek/vocabdrill/internal/ui/theme"
)

type column int

const (
	columnWords column = iota
	columnMeanings
)

// noticeExpiredMsg hides the wrong-match notice numbered Seq.
type noticeExpiredMsg struct{ Seq int }

// completeMsg opens the completion dialog after a full check.
type completeMsg struct{}

// MatchingScreen is the word/meaning matching board. A word is picked in
// the left column and dropped on a meaning in the right column.
type MatchingScreen struct {
	words   *wordset.State
	cfg     config.PracticeConfig
	shuffle sess.Shuffler
	board   *sess.Board
	retry   func() screen.Screen

	focus      column
	wordCursor int
	cardCursor int
	completing bool
}

var _ screen.Screen = (*MatchingScreen)(nil)
var _ screen.KeyHintProvider = (*MatchingScreen)(nil)
var _ screen.Closer = (*MatchingScreen)(nil)

// New creates a MatchingScreen. A nil shuffle uses session.DefaultShuffler.
func New(words *wordset.State, cfg config.PracticeConfig, shuffle sess.Shuffler) *MatchingScreen {
	return &MatchingScreen{words: words, cfg: cfg, shuffle: shuffle}
}

// WithRetry sets the factory used by the summary's "practice again" action.
func (s *MatchingScreen) WithRetry(retry func() screen.Screen) *MatchingScreen {
	s.retry = retry
	return s
}

func (s *MatchingScreen) Init() tea.Cmd {
	return s.words.Start()
}

func (s *MatchingScreen) Date() string {
	return s.words.Date
}

func (s *MatchingScreen) Title() string {
	return "Drag & Drop"
}

func (s *MatchingScreen) Close() {
	s.words.Close()
}

func (s *MatchingScreen) KeyHints() []layout.KeyHint {
	if s.board == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Column"},
		{Key: "↑↓", Description: "Move"},
	}
	if s.board.Picked() == "" {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Pick"})
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Drop"},
			layout.KeyHint{Key: "⌫", Description: "Cancel"},
		)
	}
	if s.board.Paginated() {
		hints = append(hints, layout.KeyHint{Key: "[ ]", Description: "Page"})
	}
	if s.board.CanCheck() {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Check"})
	}
	return append(hints,
		layout.KeyHint{Key: "R", Description: "Reset"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, cmd := s.words.Handle(msg); done || cmd != nil {
		if done && s.words.Ready() {
			s.board = sess.NewBoard(s.words.Words, s.cfg.PageSize, s.shuffle)
			log.Printf("[matching] session %s: %d words for %s", s.words.Token(), len(s.words.Words), s.words.Date)
		}
		return s, cmd
	}

	switch msg := msg.(type) {
	case noticeExpiredMsg:
		if s.board != nil {
			s.board.ClearNotice(msg.Seq)
		}
		return s, nil

	case completeMsg:
		if s.board == nil || !s.completing {
			return s, nil
		}
		next := summary.New(s.board.Summary(s.words.Date), s.retry)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MatchingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.board == nil {
		if s.words.Loading() {
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.completing {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		s.focus = columnWords
	case "right", "l":
		s.focus = columnMeanings
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "[", "pgup":
		s.board.PrevPage()
		s.resetCursors()
	case "]", "pgdown":
		s.board.NextPage()
		s.resetCursors()
	case "backspace":
		s.board.CancelPick()
	case "enter", "space", " ":
		return s.selectItem()
	case "c", "C":
		if _, complete := s.board.Check(); complete {
			s.completing = true
			return s, tea.Tick(s.cfg.CompletionDelay, func(time.Time) tea.Msg { return completeMsg{} })
		}
	case "r", "R":
		s.board.Reset()
		s.focus = columnWords
		s.resetCursors()
	}
	return s, nil
}

func (s *MatchingScreen) selectItem() (screen.Screen, tea.Cmd) {
	if s.focus == columnWords {
		words := s.board.PageWords()
		if s.wordCursor < len(words) && s.board.Pick(words[s.wordCursor].ID) {
			s.focus = columnMeanings
		}
		return s, nil
	}

	cards := s.board.PageMeanings()
	if s.board.Picked() == "" || s.cardCursor >= len(cards) {
		return s, nil
	}

	switch s.board.Drop(cards[s.cardCursor].ID) {
	case sess.ResultCorrect:
		s.focus = columnWords
		s.clampCursors()
	case sess.ResultIncorrect:
		_, seq := s.board.Notice()
		s.focus = columnWords
		return s, tea.Tick(s.cfg.NoticeDuration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{Seq: seq}
		})
	}
	return s, nil
}

func (s *MatchingScreen) moveCursor(delta int) {
	if s.focus == columnWords {
		s.wordCursor += delta
	} else {
		s.cardCursor += delta
	}
	s.clampCursors()
}

func (s *MatchingScreen) resetCursors() {
	s.wordCursor, s.cardCursor = 0, 0
}

func (s *MatchingScreen) clampCursors() {
	s.wordCursor = max(0, min(s.wordCursor, len(s.board.PageWords())-1))
	s.cardCursor = max(0, min(s.cardCursor, len(s.board.PageMeanings())-1))
}

func (s *MatchingScreen) View(width, height int) string {
	if s.board == nil {
		return s.words.View(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Match each word with its meaning · %d / %d matched",
			s.board.MatchedCount(), s.board.Len())))
	b.WriteString("\n\n")

	colWidth := max(20, (width-6)/2)
	left := s.renderWords(colWidth)
	right := s.renderMeanings(colWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)))
	b.WriteString("\n")

	if s.board.Paginated() {
		p := paginator.New()
		p.Type = paginator.Dots
		p.PerPage = s.cfg.PageSize
		p.SetTotalPages(s.board.Len())
		p.Page = s.board.Page()
		pager := fmt.Sprintf("%s  page %d/%d", p.View(), s.board.Page()+1, s.board.PageCount())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(pager)))
		b.WriteString("\n")
	}

	if matched := s.renderMatched(width); matched != "" {
		b.WriteString("\n")
		b.WriteString(matched)
	}

	notice, _ := s.board.Notice()
	if toast := (components.Toast{Message: notice}).View(width); toast != "" {
		b.WriteString("\n")
		b.WriteString(toast)
		b.WriteString("\n")
	}

	if s.board.Checked() {
		score := fmt.Sprintf("Score: %d / %d", s.board.Score(), s.board.Len())
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Correct.Render(score)))
	}

	return b.String()
}

func columnBox(title string, body string, width int, focused bool) string {
	border := theme.Border
	if focused {
		border = theme.Primary
	}
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(header + "\n\n" + body)
}

func (s *MatchingScreen) renderWords(width int) string {
	words := s.board.PageWords()
	var lines []string
	for i, w := range words {
		line := w.Word
		style := theme.Unselected
		switch {
		case w.ID == s.board.Picked():
			style = theme.Picked
		case s.focus == columnWords && i == s.wordCursor:
			style = theme.Selected
		}
		prefix := "  "
		if s.focus == columnWords && i == s.wordCursor {
			prefix = "▸ "
		}
		lines = append(lines, prefix+style.Render(line))
	}
	if len(lines) == 0 {
		lines = append(lines, theme.Hint.Render("All words on this page are matched."))
	}
	return columnBox("Words", strings.Join(lines, "\n"), width, s.focus == columnWords)
}

func (s *MatchingScreen) renderMeanings(width int) string {
	cards := s.board.PageMeanings()
	var lines []string
	for i, c := range cards {
		style := theme.Unselected
		prefix := "  "
		if s.focus == columnMeanings && i == s.cardCursor {
			style = theme.Selected
			prefix = "▸ "
		}
		lines = append(lines, prefix+style.Render(c.Meaning))
	}
	if len(lines) == 0 {
		lines = append(lines, theme.Hint.Render("Nothing left to match here."))
	}
	return columnBox("Meanings", strings.Join(lines, "\n"), width, s.focus == columnMeanings)
}

func (s *MatchingScreen) renderMatched(width int) string {
	pairs := s.board.PageMatches()
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render("Matched")))
	b.WriteString("\n")
	for _, m := range pairs {
		w, _ := s.board.Word(m.WordID)
		line := theme.Matched.Render(fmt.Sprintf("✓ %s  →  %s", w.Word, w.Meaning))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}
