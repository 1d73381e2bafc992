package session

import (
	"math"
	"strings"

	"github.com/abhisek/vocabdrill/internal/vocab"
)

// QuestionType selects which side of a word a quiz question shows.
type QuestionType int

const (
	// QuestionEnglish shows the word and asks for its meaning.
	QuestionEnglish QuestionType = iota
	// QuestionKorean shows the meaning and asks for the word.
	QuestionKorean
)

func (t QuestionType) String() string {
	if t == QuestionKorean {
		return "korean"
	}
	return "english"
}

// Quiz is a free-text quiz over a word set. The display order and the
// question type of every position are fixed at construction.
type Quiz struct {
	seq     sequence
	words   []vocab.Word
	types   []QuestionType
	answer  string
	result  Result
	results []Result
}

// NewQuiz shuffles words once and assigns ceil(n*englishRatio) positions
// the english question type, then shuffles that assignment as well.
func NewQuiz(words []vocab.Word, englishRatio float64, shuffle Shuffler) *Quiz {
	order := shuffled(words, shuffle)
	n := len(order)

	english := int(math.Ceil(float64(n) * englishRatio))
	english = max(0, min(n, english))

	types := make([]QuestionType, n)
	for i := english; i < n; i++ {
		types[i] = QuestionKorean
	}

	return &Quiz{
		seq:     sequence{n: n},
		words:   order,
		types:   shuffled(types, shuffle),
		results: make([]Result, n),
	}
}

// Empty reports whether there is nothing to practice.
func (q *Quiz) Empty() bool { return len(q.words) == 0 }

func (q *Quiz) Len() int { return len(q.words) }
func (q *Quiz) Index() int { return q.seq.index }
func (q *Quiz) Phase() Phase { return q.seq.phase }
func (q *Quiz) Answer() string { return q.answer }
func (q *Quiz) Result() Result { return q.result }

// Current returns the word at the cursor. It must not be called on an
// empty quiz.
func (q *Quiz) Current() vocab.Word { return q.words[q.seq.index] }

// Type returns the question type at the cursor.
func (q *Quiz) Type() QuestionType { return q.types[q.seq.index] }

// Prompt is the side of the current word shown to the learner.
func (q *Quiz) Prompt() string {
	if q.Type() == QuestionKorean {
		return q.Current().Meaning
	}
	return q.Current().Word
}

// Expected is the authoritative answer for the current question.
func (q *Quiz) Expected() string {
	if q.Type() == QuestionKorean {
		return q.Current().Word
	}
	return q.Current().Meaning
}

// SetAnswer replaces the input buffer. Input is locked outside Answering.
func (q *Quiz) SetAnswer(s string) {
	if q.seq.answering() {
		q.answer = s
	}
}

// CanCheck reports whether Check would grade anything.
func (q *Quiz) CanCheck() bool {
	return q.seq.answering() && strings.TrimSpace(q.answer) != ""
}

// Check grades the input buffer and moves to PhaseResult. It returns
// ResultNone without side effects when CanCheck is false.
func (q *Quiz) Check() Result {
	if !q.CanCheck() {
		return ResultNone
	}
	if q.Type() == QuestionKorean {
		q.result = GradeSpelling(q.answer, q.Current().Word)
	} else {
		q.result = GradeMeaning(q.answer, q.Current().Meaning)
	}
	q.results[q.seq.index] = q.result
	q.seq.phase = PhaseResult
	return q.result
}

// Next advances to the next word with cleared input. It reports true when
// the quiz has just completed.
func (q *Quiz) Next() bool {
	if q.seq.phase == PhaseCompleted {
		return false
	}
	q.clear()
	return q.seq.next()
}

// Pass skips the current word without grading. Only valid while answering.
func (q *Quiz) Pass() bool {
	if !q.seq.answering() {
		return false
	}
	return q.Next()
}

// Previous goes back one word, discarding the current input.
func (q *Quiz) Previous() bool {
	if !q.seq.previous() {
		return false
	}
	q.clear()
	return true
}

func (q *Quiz) clear() {
	q.answer = ""
	q.result = ResultNone
}

// Summary tallies the graded positions.
func (q *Quiz) Summary(date string) Summary {
	c, p, i, passed := tally(q.results)
	return Summary{
		Mode:      ModeQuiz,
		Date:      date,
		Total:     len(q.words),
		Correct:   c,
		Partial:   p,
		Incorrect: i,
		Passed:    passed,
	}
}
