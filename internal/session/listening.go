package session

import (
	"strings"

	"github.com/abhisek/vocabdrill/internal/vocab"
)

// Listening is a dictation session: the learner hears a word and types
// both its spelling and its meaning.
type Listening struct {
	seq      sequence
	words    []vocab.Word
	spelling string
	meaning  string
	playing  bool

	result     Result
	spellingOK bool
	meaningOK  bool
	results    []Result
}

// NewListening shuffles words once for the session.
func NewListening(words []vocab.Word, shuffle Shuffler) *Listening {
	order := shuffled(words, shuffle)
	return &Listening{
		seq:     sequence{n: len(order)},
		words:   order,
		results: make([]Result, len(order)),
	}
}

func (l *Listening) Empty() bool { return len(l.words) == 0 }
func (l *Listening) Len() int { return len(l.words) }
func (l *Listening) Index() int { return l.seq.index }
func (l *Listening) Phase() Phase { return l.seq.phase }
func (l *Listening) Spelling() string { return l.spelling }
func (l *Listening) Meaning() string { return l.meaning }
func (l *Listening) Result() Result { return l.result }
func (l *Listening) SpellingCorrect() bool { return l.spellingOK }
func (l *Listening) MeaningCorrect() bool { return l.meaningOK }
func (l *Listening) Playing() bool { return l.playing }

// Current returns the word at the cursor. It must not be called on an
// empty session.
func (l *Listening) Current() vocab.Word { return l.words[l.seq.index] }

func (l *Listening) SetSpelling(s string) {
	if l.seq.answering() {
		l.spelling = s
	}
}

func (l *Listening) SetMeaning(s string) {
	if l.seq.answering() {
		l.meaning = s
	}
}

// CanPlay reports whether playback may start: not already playing and
// still answering.
func (l *Listening) CanPlay() bool {
	return l.seq.answering() && !l.playing
}

// StartPlayback marks playback as running. It reports false when CanPlay
// does not hold.
func (l *Listening) StartPlayback() bool {
	if !l.CanPlay() {
		return false
	}
	l.playing = true
	return true
}

// FinishPlayback marks playback as stopped, whether it ended, failed or
// was cancelled.
func (l *Listening) FinishPlayback() {
	l.playing = false
}

// CanCheck reports whether at least one field has input.
func (l *Listening) CanCheck() bool {
	return l.seq.answering() &&
		(strings.TrimSpace(l.spelling) != "" || strings.TrimSpace(l.meaning) != "")
}

// Check grades spelling and meaning independently. Meaning must match
// exactly; there is no per-sense credit here.
func (l *Listening) Check() Result {
	if !l.CanCheck() {
		return ResultNone
	}
	w := l.Current()
	l.spellingOK = Matches(l.spelling, w.Word)
	l.meaningOK = Matches(l.meaning, w.Meaning)
	l.result = GradeListening(l.spellingOK, l.meaningOK)
	l.results[l.seq.index] = l.result
	l.seq.phase = PhaseResult
	return l.result
}

// Next advances to the next word. It reports true when the session has
// just completed.
func (l *Listening) Next() bool {
	if l.seq.phase == PhaseCompleted {
		return false
	}
	l.clear()
	return l.seq.next()
}

// Pass skips the current word without grading. Only valid while answering.
func (l *Listening) Pass() bool {
	if !l.seq.answering() {
		return false
	}
	return l.Next()
}

// Previous goes back one word, discarding the current input.
func (l *Listening) Previous() bool {
	if !l.seq.previous() {
		return false
	}
	l.clear()
	return true
}

func (l *Listening) clear() {
	l.spelling = ""
	l.meaning = ""
	l.playing = false
	l.result = ResultNone
	l.spellingOK = false
	l.meaningOK = false
}

// Summary tallies the graded positions.
func (l *Listening) Summary(date string) Summary {
	c, p, i, passed := tally(l.results)
	return Summary{
		Mode:      ModeListening,
		Date:      date,
		Total:     len(l.words),
		Correct:   c,
		Partial:   p,
		Incorrect: i,
		Passed:    passed,
	}
}
