package quiz

import (
	"log"
	"strings"

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
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// QuizScreen runs a free-text quiz over the words of one date.
type QuizScreen struct {
	words    *wordset.State
	cfg      config.PracticeConfig
	shuffle  sess.Shuffler
	quiz     *sess.Quiz
	input    components.TextInput
	showHint bool
	retry    func() screen.Screen
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a QuizScreen. A nil shuffle uses session.DefaultShuffler.
func New(words *wordset.State, cfg config.PracticeConfig, shuffle sess.Shuffler) *QuizScreen {
	return &QuizScreen{
		words:   words,
		cfg:     cfg,
		shuffle: shuffle,
		input:   components.NewTextInput("", "Type your answer...", 200),
	}
}

// WithRetry sets the factory used by the summary's "practice again" action.
func (s *QuizScreen) WithRetry(retry func() screen.Screen) *QuizScreen {
	s.retry = retry
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.words.Start(), s.input.Init())
}

func (s *QuizScreen) Date() string {
	return s.words.Date
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Close() {
	s.words.Close()
}

func (s *QuizScreen) CapturingInput() bool {
	return s.quiz != nil && s.quiz.Phase() == sess.PhaseAnswering
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quiz == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.quiz.Phase() == sess.PhaseResult {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+B", Description: "Previous"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+N", Description: "Pass"},
		{Key: "Ctrl+B", Description: "Previous"},
		{Key: "Ctrl+E", Description: "Example"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, cmd := s.words.Handle(msg); done || cmd != nil {
		if done && s.words.Ready() {
			s.quiz = sess.NewQuiz(s.words.Words, s.cfg.EnglishRatio, s.shuffle)
			log.Printf("[quiz] session %s: %d words for %s", s.words.Token(), len(s.words.Words), s.words.Date)
		}
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}

	if s.CapturingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error and empty states: any key goes back.
	if s.quiz == nil {
		if s.words.Loading() {
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "enter":
		if s.quiz.Phase() == sess.PhaseResult {
			return s.next()
		}
		s.quiz.SetAnswer(s.input.Value())
		if result := s.quiz.Check(); result != sess.ResultNone {
			s.input.Submit(result == sess.ResultCorrect)
		}
		return s, nil
	case "ctrl+n":
		if s.quiz.Phase() == sess.PhaseResult {
			return s.next()
		}
		if s.quiz.Pass() {
			return s, s.complete()
		}
		return s, s.resetInput()
	case "ctrl+b":
		if s.quiz.Previous() {
			return s, s.resetInput()
		}
		return s, nil
	case "ctrl+e":
		s.showHint = !s.showHint
		return s, nil
	}

	if s.quiz.Phase() != sess.PhaseAnswering {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.quiz.SetAnswer(s.input.Value())
	return s, cmd
}

func (s *QuizScreen) next() (screen.Screen, tea.Cmd) {
	if s.quiz.Next() {
		return s, s.complete()
	}
	return s, s.resetInput()
}

func (s *QuizScreen) resetInput() tea.Cmd {
	s.input.Reset()
	s.showHint = false
	return s.input.Focus()
}

func (s *QuizScreen) complete() tea.Cmd {
	sum := s.quiz.Summary(s.words.Date)
	next := summary.New(sum, s.retry)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) View(width, height int) string {
	if s.quiz == nil {
		return s.words.View(width, height)
	}
	if s.quiz.Phase() == sess.PhaseCompleted {
		return ""
	}

	q := s.quiz
	w := q.Current()
	var b strings.Builder

	// Progress line.
	label := "Meaning of this word?"
	if q.Type() == sess.QuestionKorean {
		label = "Which word means this?"
	}
	bar := components.NewProgressBar(q.Index()+1, q.Len(), min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(label))
	b.WriteString("\n\n")
	b.WriteString(theme.Prompt.Width(width).Render(q.Prompt()))
	b.WriteString("\n")
	if q.Type() == sess.QuestionEnglish && w.PartOfSpeech != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(w.PartOfSpeech))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.showHint {
		b.WriteString(renderHint(w, q.Type(), width))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if q.Phase() == sess.PhaseResult {
		b.WriteString(renderResult(q.Result(), q.Expected(), width))
	}

	return b.String()
}

func renderHint(w vocab.Word, typ sess.QuestionType, width int) string {
	var hint string
	if typ == sess.QuestionKorean {
		hint = w.ExampleWithBlank()
	} else {
		hint = w.Example
	}
	if hint == "" && len(w.Synonyms) > 0 && typ == sess.QuestionKorean {
		hint = "Synonyms: " + w.Synonyms.String()
	}
	if hint == "" {
		hint = "No example for this word."
	}
	return theme.Hint.Width(width).Align(lipgloss.Center).Render(hint)
}

func renderResult(result sess.Result, expected string, width int) string {
	var line string
	switch result {
	case sess.ResultCorrect:
		line = theme.Correct.Render("Correct!")
	case sess.ResultPartial:
		line = theme.Partial.Render("Partially correct") + "  " +
			theme.Hint.Render("Full answer: "+expected)
	default:
		line = theme.Incorrect.Render("Not quite") + "  " +
			theme.Hint.Render("Answer: "+expected)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
