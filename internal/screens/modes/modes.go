// Package modes holds the practice-mode menu and the factory that builds
// practice screens.
package modes

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabdrill/internal/config"
	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/screens/listening"
	"github.com/abhisek/vocabdrill/internal/screens/matching"
	"github.com/abhisek/vocabdrill/internal/screens/quiz"
	"github.com/abhisek/vocabdrill/internal/screens/wordset"
	sess "github.com/abhisek/vocabdrill/internal/session"
	"github.com/abhisek/vocabdrill/internal/speech"
	"github.com/abhisek/vocabdrill/internal/ui/components"
	"github.com/abhisek/vocabdrill/internal/ui/theme"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// Deps are the collaborators shared by all practice screens.
type Deps struct {
	Loader   vocab.Loader
	Practice config.PracticeConfig
	Speaker  speech.Speaker
	Shuffle  sess.Shuffler // nil uses session.DefaultShuffler
	Timeout  time.Duration // per word set fetch; 0 means none
}

// Screen builds a fresh practice screen for mode over the words of date.
// Its summary offers to rerun the same mode on the same date.
func (d Deps) Screen(mode sess.Mode, date string) screen.Screen {
	retry := func() screen.Screen { return d.Screen(mode, date) }
	words := d.WordSet(date)

	switch mode {
	case sess.ModeDragDrop:
		return matching.New(words, d.Practice, d.Shuffle).WithRetry(retry)
	case sess.ModeListening:
		return listening.New(words, d.Speaker, d.Shuffle).WithRetry(retry)
	default:
		return quiz.New(words, d.Practice, d.Shuffle).WithRetry(retry)
	}
}

// WordSet returns an unstarted loader state for date.
func (d Deps) WordSet(date string) *wordset.State {
	return wordset.New(d.Loader, date, d.Timeout)
}

var descriptions = map[sess.Mode]string{
	sess.ModeQuiz:      "Type the meaning of a word, or the word for a meaning",
	sess.ModeDragDrop:  "Pair every word with its meaning",
	sess.ModeListening: "Hear a word, then write it and its meaning",
}

// ModesScreen lets the learner choose how to practice one date.
type ModesScreen struct {
	date string
	menu components.Menu
}

var _ screen.Screen = (*ModesScreen)(nil)

// New creates the mode menu for date.
func New(deps Deps, date string) *ModesScreen {
	items := make([]components.MenuItem, 0, len(sess.Modes))
	for _, m := range sess.Modes {
		items = append(items, components.MenuItem{
			Label: m.Label(),
			Hint:  descriptions[m],
			Action: func() tea.Cmd {
				next := deps.Screen(m, date)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		})
	}
	return &ModesScreen{date: date, menu: components.NewMenu(items)}
}

func (s *ModesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Choose a practice mode"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Words for " + vocab.DisplayDate(s.date)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}

func (s *ModesScreen) Date() string {
	return s.date
}

func (s *ModesScreen) Title() string {
	return "Practice"
}
