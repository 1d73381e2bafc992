package listening

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/screens/summary"
	"github.com/abhisek/vocabdrill/internal/screens/wordset"
	sess "github.com/abhisek/vocabdrill/internal/session"
	"github.com/abhisek/vocabdrill/internal/speech"
	"github.com/abhisek/vocabdrill/internal/ui/components"
	"github.com/abhisek/vocabdrill/internal/ui/layout"
	"github.com/abhisek/vocabdrill/internal/ui/theme"
)

// playbackDoneMsg reports the end of the playback numbered Seq.
type playbackDoneMsg struct {
	Seq int
	Err error
}

type field int

const (
	fieldSpelling field = iota
	fieldMeaning
)

// ListeningScreen is a dictation session: the word is spoken and the
// learner types its spelling and meaning.
type ListeningScreen struct {
	words   *wordset.State
	speaker speech.Speaker
	shuffle sess.Shuffler
	session *sess.Listening
	retry   func() screen.Screen

	spelling components.TextInput
	meaning  components.TextInput
	focus    field

	playSeq    int
	cancelPlay context.CancelFunc
	alert      string
}

var _ screen.Screen = (*ListeningScreen)(nil)
var _ screen.KeyHintProvider = (*ListeningScreen)(nil)
var _ screen.Closer = (*ListeningScreen)(nil)
var _ screen.Capturer = (*ListeningScreen)(nil)

// New creates a ListeningScreen. A nil shuffle uses session.DefaultShuffler.
func New(words *wordset.State, speaker speech.Speaker, shuffle sess.Shuffler) *ListeningScreen {
	if speaker == nil {
		speaker = speech.Unavailable{}
	}
	s := &ListeningScreen{
		words:    words,
		speaker:  speaker,
		shuffle:  shuffle,
		spelling: components.NewTextInput("Spelling", "What word did you hear?", 100),
		meaning:  components.NewTextInput("Meaning", "What does it mean?", 200),
	}
	s.meaning.Blur()
	return s
}

// WithRetry sets the factory used by the summary's "practice again" action.
func (s *ListeningScreen) WithRetry(retry func() screen.Screen) *ListeningScreen {
	s.retry = retry
	return s
}

func (s *ListeningScreen) Init() tea.Cmd {
	return tea.Batch(s.words.Start(), s.spelling.Init())
}

func (s *ListeningScreen) Date() string {
	return s.words.Date
}

func (s *ListeningScreen) Title() string {
	return "Listening"
}

func (s *ListeningScreen) Close() {
	s.stopPlayback()
	s.words.Close()
}

func (s *ListeningScreen) CapturingInput() bool {
	return s.session != nil && s.session.Phase() == sess.PhaseAnswering && s.alert == ""
}

func (s *ListeningScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.alert != "" {
		return []layout.KeyHint{{Key: "Any key", Description: "Dismiss"}}
	}
	if s.session.Phase() == sess.PhaseResult {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+B", Description: "Previous"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+P", Description: "Play"},
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+N", Description: "Pass"},
		{Key: "Ctrl+B", Description: "Previous"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ListeningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if done, cmd := s.words.Handle(msg); done || cmd != nil {
		if done && s.words.Ready() {
			s.session = sess.NewListening(s.words.Words, s.shuffle)
			log.Printf("[listening] session %s: %d words for %s", s.words.Token(), len(s.words.Words), s.words.Date)
		}
		return s, cmd
	}

	switch msg := msg.(type) {
	case playbackDoneMsg:
		if msg.Seq != s.playSeq || s.session == nil {
			return s, nil
		}
		s.finishPlayback()
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			log.Printf("[listening] playback failed: %v", msg.Err)
			s.alert = playbackAlert(msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.CapturingInput() {
		var cmd tea.Cmd
		if s.focus == fieldSpelling {
			s.spelling, cmd = s.spelling.Update(msg)
		} else {
			s.meaning, cmd = s.meaning.Update(msg)
		}
		return s, cmd
	}
	return s, nil
}

func (s *ListeningScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil {
		if s.words.Loading() {
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.alert != "" {
		s.alert = ""
		return s, nil
	}

	switch msg.String() {
	case "ctrl+p":
		return s, s.play()
	case "enter":
		if s.session.Phase() == sess.PhaseResult {
			return s.next()
		}
		s.sync()
		if s.session.Check() != sess.ResultNone {
			s.spelling.Submit(s.session.SpellingCorrect())
			s.meaning.Submit(s.session.MeaningCorrect())
		}
		return s, nil
	case "ctrl+n":
		if s.session.Phase() == sess.PhaseResult {
			return s.next()
		}
		s.stopPlayback()
		if s.session.Pass() {
			return s, s.complete()
		}
		return s, s.resetInputs()
	case "ctrl+b":
		s.stopPlayback()
		if s.session.Previous() {
			return s, s.resetInputs()
		}
		return s, nil
	case "tab", "shift+tab", "up", "down":
		if s.session.Phase() == sess.PhaseAnswering {
			return s, s.toggleFocus()
		}
		return s, nil
	}

	if s.session.Phase() != sess.PhaseAnswering {
		return s, nil
	}
	var cmd tea.Cmd
	if s.focus == fieldSpelling {
		s.spelling, cmd = s.spelling.Update(msg)
	} else {
		s.meaning, cmd = s.meaning.Update(msg)
	}
	s.sync()
	return s, cmd
}

func (s *ListeningScreen) sync() {
	s.session.SetSpelling(s.spelling.Value())
	s.session.SetMeaning(s.meaning.Value())
}

// play speaks the current word in the background. At most one playback
// runs at a time.
func (s *ListeningScreen) play() tea.Cmd {
	if !s.session.StartPlayback() {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.playSeq++
	s.cancelPlay = cancel

	seq, text, speaker := s.playSeq, s.session.Current().Word, s.speaker
	return func() tea.Msg {
		return playbackDoneMsg{Seq: seq, Err: speaker.Speak(ctx, text)}
	}
}

func (s *ListeningScreen) finishPlayback() {
	if s.cancelPlay != nil {
		s.cancelPlay()
		s.cancelPlay = nil
	}
	s.session.FinishPlayback()
}

// stopPlayback cancels any running playback and invalidates its result.
func (s *ListeningScreen) stopPlayback() {
	s.playSeq++
	if s.cancelPlay != nil {
		s.cancelPlay()
		s.cancelPlay = nil
	}
	if s.session != nil {
		s.session.FinishPlayback()
	}
}

func (s *ListeningScreen) toggleFocus() tea.Cmd {
	if s.focus == fieldSpelling {
		s.focus = fieldMeaning
		s.spelling.Blur()
		return s.meaning.Focus()
	}
	s.focus = fieldSpelling
	s.meaning.Blur()
	return s.spelling.Focus()
}

func (s *ListeningScreen) next() (screen.Screen, tea.Cmd) {
	s.stopPlayback()
	if s.session.Next() {
		return s, s.complete()
	}
	return s, s.resetInputs()
}

func (s *ListeningScreen) resetInputs() tea.Cmd {
	s.spelling.Reset()
	s.meaning.Reset()
	s.meaning.Blur()
	s.focus = fieldSpelling
	return s.spelling.Focus()
}

func (s *ListeningScreen) complete() tea.Cmd {
	next := summary.New(s.session.Summary(s.words.Date), s.retry)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func playbackAlert(err error) string {
	if errors.Is(err, speech.ErrUnavailable) {
		return "Speech playback is not available. Install espeak-ng, spd-say or say, or set VOCABDRILL_SPEECH_CMD."
	}
	return "Audio playback failed: " + err.Error()
}

func (s *ListeningScreen) View(width, height int) string {
	if s.session == nil {
		return s.words.View(width, height)
	}
	if s.session.Phase() == sess.PhaseCompleted {
		return ""
	}

	l := s.session
	var b strings.Builder

	bar := components.NewProgressBar(l.Index()+1, l.Len(), min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Listen, then write the word and its meaning"))
	b.WriteString("\n\n")

	status := theme.Hint.Render("🔈 Press Ctrl+P to hear the word")
	if l.Playing() {
		status = theme.Prompt.Render("🔊 Playing...")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, status))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spelling.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.meaning.View()))
	b.WriteString("\n\n")

	if l.Phase() == sess.PhaseResult {
		b.WriteString(renderResult(l, width))
		b.WriteString("\n")
	}

	if s.alert != "" {
		b.WriteString("\n")
		b.WriteString(components.Toast{Message: s.alert}.View(width))
		b.WriteString("\n")
	}

	return b.String()
}

func renderResult(l *sess.Listening, width int) string {
	w := l.Current()

	var headline string
	switch l.Result() {
	case sess.ResultCorrect:
		headline = theme.Correct.Render("Correct!")
	case sess.ResultPartial:
		headline = theme.Partial.Render("Partially correct")
	default:
		headline = theme.Incorrect.Render("Not quite")
	}

	mark := func(ok bool) string {
		if ok {
			return theme.Correct.Render("✓")
		}
		return theme.Incorrect.Render("✗")
	}

	lines := []string{
		headline,
		fmt.Sprintf("%s Spelling: %s", mark(l.SpellingCorrect()), w.Word),
		fmt.Sprintf("%s Meaning: %s", mark(l.MeaningCorrect()), w.Meaning),
	}
	if w.Example != "" {
		lines = append(lines, theme.Hint.Render(w.Example))
	}
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(lines, "\n")
}
