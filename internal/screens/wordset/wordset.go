// Package wordset loads the word set behind a practice screen and renders
// its loading, error and empty states.
package wordset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/vocabdrill/internal/ui/theme"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

// LoadedMsg carries the result of a word set fetch. Token identifies the
// State that issued it; results for any other token are stale.
type LoadedMsg struct {
	Token string
	Date  string
	Words []vocab.Word
	Err   error
}

// State tracks one fetch of the word set for a date.
type State struct {
	Date    string
	Words   []vocab.Word
	Err     error
	loader  vocab.Loader
	timeout time.Duration
	token   string
	cancel  context.CancelFunc
	loading bool
	spin    spinner.Model
}

// New creates a State for date. Call Start from the screen's Init.
func New(loader vocab.Loader, date string, timeout time.Duration) *State {
	return &State{
		Date:    date,
		loader:  loader,
		timeout: timeout,
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

// Start issues the fetch. A previous fetch still in flight is cancelled
// and its result will be ignored.
func (s *State) Start() tea.Cmd {
	s.Close()

	ctx := context.Background()
	var cancel context.CancelFunc
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	s.token = uuid.NewString()
	s.cancel = cancel
	s.loading = true
	s.Words = nil
	s.Err = nil

	return tea.Batch(Load(ctx, s.loader, s.Date, s.token), s.spin.Tick)
}

// Load returns a command fetching the words for date.
func Load(ctx context.Context, loader vocab.Loader, date, token string) tea.Cmd {
	return func() tea.Msg {
		words, err := loader.LoadWords(ctx, date)
		if err != nil {
			log.Printf("[wordset] load %s: %v", date, err)
		}
		return LoadedMsg{Token: token, Date: date, Words: words, Err: err}
	}
}

// Handle consumes fetch and spinner messages. done reports that the fetch
// has just finished, successfully or not.
func (s *State) Handle(msg tea.Msg) (done bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		if !s.loading || msg.Token != s.token {
			return false, nil
		}
		s.loading = false
		s.cancel()
		s.cancel = nil
		s.Words, s.Err = msg.Words, msg.Err
		return true, nil
	case spinner.TickMsg:
		if !s.loading {
			return false, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return false, cmd
	}
	return false, nil
}

// Token identifies the current fetch. It also tags the log lines of the
// session built from it.
func (s *State) Token() string { return s.token }

// Loading reports whether the fetch is in flight.
func (s *State) Loading() bool { return s.loading }

// Ready reports whether words are available to practice.
func (s *State) Ready() bool { return !s.loading && s.Err == nil && len(s.Words) > 0 }

// Empty reports whether the fetch succeeded with no words.
func (s *State) Empty() bool { return !s.loading && s.Err == nil && len(s.Words) == 0 }

// Close cancels an in-flight fetch.
func (s *State) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
}

// View renders the loading, error or empty state. It returns "" once
// words are ready.
func (s *State) View(width, height int) string {
	switch {
	case s.loading:
		return renderLoading(width, s.spin.View(), s.Date)
	case s.Err != nil:
		return renderError(width, s.Err)
	case len(s.Words) == 0:
		return renderEmpty(width, s.Date)
	}
	return ""
}

func renderLoading(width int, spin, date string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n%s Loading words for %s...", spin, vocab.DisplayDate(date)))
}

func renderError(width int, err error) string {
	msg := err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "the server took too long to respond"
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Failed to load words: %s\n\n  Press any key to go back.", msg))
}

func renderEmpty(width int, date string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  No words for %s yet.\n\n  Add some with `vocabdrill words add`, then come back.\n\n  Press any key to go back.",
			vocab.DisplayDate(date)))
}
