package session

import "github.com/abhisek/vocabdrill/internal/vocab"

// WrongMatchNotice is shown briefly after an incorrect pairing.
const WrongMatchNotice = "Wrong match! Try again."

// MeaningCard is an entry of the meanings column. Its ID is the ID of the
// Word it was taken from.
type MeaningCard struct {
	ID      string
	Meaning string
}

// Match pairs a word with a meaning card.
type Match struct {
	WordID    string
	MeaningID string
}

// Board is a paginated word/meaning matching exercise.
//
// Both columns are built from the same word list, so a meaning card
// carries the ID of the word it belongs to. A pairing is correct exactly
// when the word ID equals the meaning card ID, that is, when both sides
// come from the same Word. Only correct pairings are ever recorded.
//
// Each word and each meaning card is in at most one pair: Pick refuses a
// matched word and Drop refuses a matched card, so a recorded pair is
// never replaced.
type Board struct {
	words    []vocab.Word
	meanings []MeaningCard
	byID     map[string]vocab.Word
	pageSize int
	page     int

	matches []Match
	picked  string

	notice    string
	noticeSeq int

	checked bool
	score   int
}

// NewBoard shuffles the word and meaning columns independently.
func NewBoard(words []vocab.Word, pageSize int, shuffle Shuffler) *Board {
	if pageSize < 1 {
		pageSize = 1
	}
	cards := make([]MeaningCard, len(words))
	byID := make(map[string]vocab.Word, len(words))
	for i, w := range words {
		cards[i] = MeaningCard{ID: w.ID, Meaning: w.Meaning}
		byID[w.ID] = w
	}
	return &Board{
		words:    shuffled(words, shuffle),
		meanings: shuffled(cards, shuffle),
		byID:     byID,
		pageSize: pageSize,
	}
}

func (b *Board) Empty() bool { return len(b.words) == 0 }
func (b *Board) Len() int { return len(b.words) }
func (b *Board) Page() int { return b.page }
func (b *Board) Picked() string { return b.picked }
func (b *Board) Matches() []Match { return append([]Match(nil), b.matches...) }
func (b *Board) MatchedCount() int { return len(b.matches) }
func (b *Board) Checked() bool { return b.checked }
func (b *Board) Score() int { return b.score }

// Word looks up a word of the board by ID.
func (b *Board) Word(id string) (vocab.Word, bool) {
	w, ok := b.byID[id]
	return w, ok
}

// Paginated reports whether page controls should be shown.
func (b *Board) Paginated() bool { return len(b.words) >= b.pageSize }

// PageCount is the number of pages, at least one.
func (b *Board) PageCount() int {
	if len(b.words) == 0 {
		return 1
	}
	return (len(b.words) + b.pageSize - 1) / b.pageSize
}

// SetPage jumps to page p (0-based), clamped to the valid range. Any
// pending pick is dropped since it may no longer be visible.
func (b *Board) SetPage(p int) {
	p = max(0, min(p, b.PageCount()-1))
	if p != b.page {
		b.picked = ""
	}
	b.page = p
}

func (b *Board) NextPage() { b.SetPage(b.page + 1) }
func (b *Board) PrevPage() { b.SetPage(b.page - 1) }

func (b *Board) pageSlice() []vocab.Word {
	start := b.page * b.pageSize
	end := min(start+b.pageSize, len(b.words))
	if start >= end {
		return nil
	}
	return b.words[start:end]
}

func (b *Board) onPage(id string) bool {
	for _, w := range b.pageSlice() {
		if w.ID == id {
			return true
		}
	}
	return false
}

func (b *Board) wordMatched(id string) bool {
	for _, m := range b.matches {
		if m.WordID == id {
			return true
		}
	}
	return false
}

func (b *Board) meaningMatched(id string) bool {
	for _, m := range b.matches {
		if m.MeaningID == id {
			return true
		}
	}
	return false
}

// PageWords returns the unmatched words of the current page in column order.
func (b *Board) PageWords() []vocab.Word {
	var out []vocab.Word
	for _, w := range b.pageSlice() {
		if !b.wordMatched(w.ID) {
			out = append(out, w)
		}
	}
	return out
}

// PageMeanings returns the unmatched meaning cards belonging to the
// current page's words, in meaning column order.
func (b *Board) PageMeanings() []MeaningCard {
	var out []MeaningCard
	for _, c := range b.meanings {
		if b.onPage(c.ID) && !b.meaningMatched(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// PageMatches returns the recorded pairs whose word is on the current page.
func (b *Board) PageMatches() []Match {
	var out []Match
	for _, m := range b.matches {
		if b.onPage(m.WordID) {
			out = append(out, m)
		}
	}
	return out
}

// Pick selects an available word as the drag source. It reports false for
// unknown or already matched words.
func (b *Board) Pick(wordID string) bool {
	if _, ok := b.byID[wordID]; !ok || b.wordMatched(wordID) {
		return false
	}
	b.picked = wordID
	return true
}

// CancelPick clears the drag source.
func (b *Board) CancelPick() { b.picked = "" }

// Drop pairs the picked word with a meaning card and grades it at once.
//
// A correct pairing is recorded. An incorrect pairing records nothing, raises the wrong-match notice and
// clears the pick. Dropping with nothing picked, or onto a card that is
// already matched, is ignored and returns ResultNone.
func (b *Board) Drop(meaningID string) Result {
	if b.picked == "" {
		return ResultNone
	}
	if _, ok := b.byID[meaningID]; !ok || b.meaningMatched(meaningID) {
		return ResultNone
	}

	wordID := b.picked
	b.picked = ""

	if wordID != meaningID {
		b.notice = WrongMatchNotice
		b.noticeSeq++
		return ResultIncorrect
	}

	b.matches = append(b.matches, Match{WordID: wordID, MeaningID: meaningID})
	return ResultCorrect
}

// Notice returns the active notice and its sequence number. The sequence
// number lets a delayed clear ignore notices raised after it was scheduled.
func (b *Board) Notice() (string, int) { return b.notice, b.noticeSeq }

// ClearNotice hides the notice if it is still the one numbered seq.
func (b *Board) ClearNotice(seq int) {
	if seq == b.noticeSeq {
		b.notice = ""
	}
}

// CanCheck reports whether every word has been matched.
func (b *Board) CanCheck() bool {
	return len(b.words) > 0 && len(b.matches) == len(b.words)
}

// Check scores the board. complete is true when every pair is correct,
// which holds whenever CanCheck does.
func (b *Board) Check() (score int, complete bool) {
	if !b.CanCheck() {
		return 0, false
	}
	score = 0
	for _, m := range b.matches {
		if m.WordID == m.MeaningID {
			score++
		}
	}
	b.score = score
	b.checked = true
	return score, score == len(b.words)
}

// Reset clears all pairs and returns to the first page. Column order is
// kept.
func (b *Board) Reset() {
	b.matches = nil
	b.picked = ""
	b.notice = ""
	b.checked = false
	b.score = 0
	b.page = 0
}

// Summary reports the board result.
func (b *Board) Summary(date string) Summary {
	return Summary{
		Mode:      ModeDragDrop,
		Date:      date,
		Total:     len(b.words),
		Correct:   b.score,
		Incorrect: len(b.words) - b.score,
	}
}
