package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screen"
	"github.com/abhisek/vocabdrill/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		Mode:      session.ModeQuiz,
		Date:      "2025-03-07",
		Total:     10,
		Correct:   6,
		Partial:   2,
		Incorrect: 1,
		Passed:    1,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Session Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	for _, want := range []string{"All words completed!", "3/7/2025", "60%", "Partial"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_DragDropScore(t *testing.T) {
	s := New(session.Summary{Mode: session.ModeDragDrop, Date: "2025-03-07", Total: 8, Correct: 8}, nil)
	if view := s.View(80, 24); !strings.Contains(view, "Score: 8 / 8") {
		t.Errorf("view = %q, want drag-drop score", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string { return "" }
func (stubScreen) Title() string { return "retry" }

func TestSummaryScreen_Retry(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "retry" {
		t.Errorf("replacement = %q", msg.Screen.Title())
	}
}

func TestSummaryScreen_RetryDisabled(t *testing.T) {
	s := New(testSummary(), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("r must do nothing without a retry factory")
	}
	if len(s.KeyHints()) != 1 {
		t.Errorf("hints = %v", s.KeyHints())
	}
}
