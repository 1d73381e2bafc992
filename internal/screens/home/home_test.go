package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabdrill/internal/config"
	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screens/modes"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

type stubLoader struct{}

func (stubLoader) LoadWords(context.Context, string) ([]vocab.Word, error) {
	return nil, nil
}

var testNow = time.Date(2025, 3, 7, 10, 0, 0, 0, time.Local)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newHome(date string) *HomeScreen {
	deps := modes.Deps{Loader: stubLoader{}, Practice: config.DefaultConfig().Practice}
	return New(deps, date, testNow)
}

func TestHomeScreen_DefaultsToToday(t *testing.T) {
	h := newHome("")
	if h.Date() != "2025-03-07" {
		t.Errorf("Date = %q, want today", h.Date())
	}
}

func TestHomeScreen_ShiftDate(t *testing.T) {
	h := newHome("")

	h.Update(specialKey(tea.KeyLeft))
	if h.Date() != "2025-03-06" {
		t.Errorf("after left: %q", h.Date())
	}
	h.Update(specialKey(tea.KeyRight))
	h.Update(specialKey(tea.KeyRight))
	if h.Date() != "2025-03-08" {
		t.Errorf("after right: %q", h.Date())
	}
	h.Update(keyPress('t'))
	if h.Date() != "2025-03-07" {
		t.Errorf("after t: %q", h.Date())
	}
}

func TestHomeScreen_TypedDate(t *testing.T) {
	h := newHome("")
	h.Update(keyPress('/'))
	if !h.CapturingInput() {
		t.Fatal("typing a date captures input")
	}

	for _, r := range "2024-13-01" {
		h.Update(keyPress(r))
	}
	h.Update(specialKey(tea.KeyEnter))
	if h.inputErr == "" || !h.editing {
		t.Fatal("invalid dates are rejected and editing continues")
	}

	h.input.Reset()
	for _, r := range "2024-12-25" {
		h.Update(keyPress(r))
	}
	h.Update(specialKey(tea.KeyEnter))
	if h.editing || h.Date() != "2024-12-25" {
		t.Errorf("editing=%v date=%q", h.editing, h.Date())
	}
}

func TestHomeScreen_MenuPushesPractice(t *testing.T) {
	h := newHome("2025-03-01")
	h.Update(specialKey(tea.KeyDown))

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if msg.Screen.Title() != "Practice" {
		t.Errorf("pushed %q, want Practice", msg.Screen.Title())
	}
}

func TestHomeScreen_UpdateNote(t *testing.T) {
	h := newHome("")
	h.Update(UpdateAvailableMsg{Latest: "v1.2.0"})
	if !strings.Contains(h.View(120, 40), "v1.2.0") {
		t.Error("update note is shown")
	}
}
