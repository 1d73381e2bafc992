package wordset

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/vocabdrill/internal/vocab"
)

type stubLoader struct {
	words []vocab.Word
	err   error
	dates []string
}

func (l *stubLoader) LoadWords(_ context.Context, date string) ([]vocab.Word, error) {
	l.dates = append(l.dates, date)
	return l.words, l.err
}

const testDate = "2025-03-07"

func TestLoad(t *testing.T) {
	loader := &stubLoader{words: []vocab.Word{{ID: "w1", Word: "apple", Meaning: "사과"}}}

	msg := Load(context.Background(), loader, testDate, "tok")()
	loaded, ok := msg.(LoadedMsg)
	if !ok {
		t.Fatalf("Load returned %T, want LoadedMsg", msg)
	}
	if loaded.Token != "tok" || loaded.Date != testDate || len(loaded.Words) != 1 {
		t.Errorf("unexpected message %+v", loaded)
	}
	if len(loader.dates) != 1 || loader.dates[0] != testDate {
		t.Errorf("loader called with %v", loader.dates)
	}
}

func TestHandle_Ready(t *testing.T) {
	s := New(&stubLoader{}, testDate, 0)
	s.Start()
	if !s.Loading() {
		t.Fatal("expected loading after Start")
	}
	if !strings.Contains(s.View(80, 24), "Loading words for 3/7/2025") {
		t.Errorf("loading view = %q", s.View(80, 24))
	}

	words := []vocab.Word{{ID: "w1", Word: "apple", Meaning: "사과"}}
	done, _ := s.Handle(LoadedMsg{Token: s.Token(), Date: testDate, Words: words})
	if !done {
		t.Fatal("expected done")
	}
	if !s.Ready() || s.Loading() {
		t.Error("expected ready state")
	}
	if s.View(80, 24) != "" {
		t.Error("ready state renders nothing")
	}
}

func TestHandle_StaleResultIgnored(t *testing.T) {
	s := New(&stubLoader{}, testDate, 0)
	s.Start()
	first := s.Token()
	s.Start()
	if s.Token() == first {
		t.Fatal("Start must issue a new token")
	}

	done, _ := s.Handle(LoadedMsg{Token: first, Words: []vocab.Word{{ID: "old"}}})
	if done || !s.Loading() {
		t.Error("result for an old token must be ignored")
	}
}

func TestHandle_AfterClose(t *testing.T) {
	s := New(&stubLoader{}, testDate, 0)
	s.Start()
	s.Close()

	done, _ := s.Handle(LoadedMsg{Token: s.Token(), Words: []vocab.Word{{ID: "w1"}}})
	if done {
		t.Error("result after Close must be ignored")
	}
}

func TestView_Error(t *testing.T) {
	s := New(&stubLoader{}, testDate, 0)
	s.Start()
	s.Handle(LoadedMsg{Token: s.Token(), Err: errors.New("boom")})

	if s.Ready() || s.Empty() {
		t.Error("error state is neither ready nor empty")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Failed to load words: boom") {
		t.Errorf("error view = %q", view)
	}
}

func TestView_Timeout(t *testing.T) {
	s := New(&stubLoader{}, testDate, 0)
	s.Start()
	s.Handle(LoadedMsg{Token: s.Token(), Err: context.DeadlineExceeded})

	if !strings.Contains(s.View(80, 24), "took too long") {
		t.Error("deadline errors get a friendly message")
	}
}

func TestView_Empty(t *testing.T) {
	s := New(&stubLoader{}, testDate, 0)
	s.Start()
	s.Handle(LoadedMsg{Token: s.Token(), Words: []vocab.Word{}})

	if !s.Empty() {
		t.Fatal("expected empty state")
	}
	if !strings.Contains(s.View(80, 24), "No words for 3/7/2025") {
		t.Errorf("empty view = %q", s.View(80, 24))
	}
}
