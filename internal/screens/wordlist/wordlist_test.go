package wordlist

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabdrill/internal/router"
	"github.com/abhisek/vocabdrill/internal/screens/wordset"
	"github.com/abhisek/vocabdrill/internal/vocab"
)

type stubLoader struct{}

func (stubLoader) LoadWords(context.Context, string) ([]vocab.Word, error) {
	return nil, nil
}

func loaded(words []vocab.Word) *WordListScreen {
	state := wordset.New(stubLoader{}, "2025-03-07", 0)
	s := New(state)
	s.Init()
	s.Update(wordset.LoadedMsg{Token: state.Token(), Date: "2025-03-07", Words: words})
	return s
}

func TestWordListScreen_View(t *testing.T) {
	s := loaded([]vocab.Word{{
		ID:           "w1",
		Word:         "serene",
		Meaning:      "고요한",
		PartOfSpeech: "adj",
		Synonyms:     vocab.Synonyms{"calm", "peaceful"},
		Example:      "The lake was serene.",
	}})

	view := s.View(100, 40)
	for _, want := range []string{"1 words for 3/7/2025", "serene", "adj", "고요한", "calm, peaceful", "The lake was serene."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestWordListScreen_Scroll(t *testing.T) {
	words := make([]vocab.Word, 20)
	for i := range words {
		words[i] = vocab.Word{ID: string(rune('a' + i)), Word: "word", Meaning: "meaning"}
	}
	s := loaded(words)
	s.View(100, 10)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 2 {
		t.Errorf("offset = %d, want 2", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 1 {
		t.Errorf("offset = %d, want 1", s.offset)
	}
}

func TestWordListScreen_EmptyGoesBack(t *testing.T) {
	s := loaded([]vocab.Word{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
