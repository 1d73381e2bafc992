package session

import (
	"testing"

	"github.com/abhisek/vocabdrill/internal/vocab"
)

func ids(words []vocab.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func cardIDs(cards []MeaningCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBoard_CorrectPairingRecorded(t *testing.T) {
	b := NewBoard(testWords(3), 6, IdentityShuffler)

	if !b.Pick("w1") {
		t.Fatal("Pick failed")
	}
	if got := b.Drop("w1"); got != ResultCorrect {
		t.Fatalf("Drop = %v, want correct", got)
	}
	if b.MatchedCount() != 1 || b.Picked() != "" {
		t.Errorf("matched=%d picked=%q", b.MatchedCount(), b.Picked())
	}
	if !equalStrings(ids(b.PageWords()), []string{"w0", "w2"}) {
		t.Errorf("available words = %v", ids(b.PageWords()))
	}
	if !equalStrings(cardIDs(b.PageMeanings()), []string{"w0", "w2"}) {
		t.Errorf("available meanings = %v", cardIDs(b.PageMeanings()))
	}
}

func TestBoard_IncorrectPairingNotRecorded(t *testing.T) {
	b := NewBoard(testWords(3), 6, IdentityShuffler)
	b.Pick("w0")
	b.Drop("w0")

	before := b.Matches()
	_, seqBefore := b.Notice()

	b.Pick("w1")
	if got := b.Drop("w2"); got != ResultIncorrect {
		t.Fatalf("Drop = %v, want incorrect", got)
	}

	after := b.Matches()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("matches changed: %v -> %v", before, after)
	}
	if b.Picked() != "" {
		t.Error("incorrect drop must clear the drag source")
	}
	notice, seq := b.Notice()
	if notice != WrongMatchNotice || seq != seqBefore+1 {
		t.Errorf("notice = %q seq = %d", notice, seq)
	}
}

func TestBoard_NoticeClearsOnlyMatchingSeq(t *testing.T) {
	b := NewBoard(testWords(3), 6, IdentityShuffler)
	b.Pick("w0")
	b.Drop("w1")
	_, first := b.Notice()
	b.Pick("w0")
	b.Drop("w2")

	b.ClearNotice(first)
	if n, _ := b.Notice(); n == "" {
		t.Error("stale clear removed a newer notice")
	}
	_, second := b.Notice()
	b.ClearNotice(second)
	if n, _ := b.Notice(); n != "" {
		t.Errorf("notice = %q after clear", n)
	}
}

func TestBoard_DropIgnoredWithoutPickOrOnMatchedTarget(t *testing.T) {
	b := NewBoard(testWords(2), 6, IdentityShuffler)
	if got := b.Drop("w0"); got != ResultNone {
		t.Errorf("Drop without pick = %v", got)
	}

	b.Pick("w0")
	b.Drop("w0")
	b.Pick("w1")
	if got := b.Drop("w0"); got != ResultNone {
		t.Errorf("Drop onto matched card = %v, want none", got)
	}
	if b.Pick("w0") {
		t.Error("a matched word must not be pickable")
	}
}

func TestBoard_EachSideMatchedOnce(t *testing.T) {
	b := NewBoard(testWords(2), 6, IdentityShuffler)
	b.Pick("w0")
	b.Drop("w0")

	// Neither side of a recorded pair can take part in another drop.
	if b.Pick("w0") {
		t.Error("matched word was picked again")
	}
	b.Pick("w1")
	if got := b.Drop("w0"); got != ResultNone {
		t.Errorf("Drop onto matched card = %v, want none", got)
	}
	if got := b.Drop("w1"); got != ResultCorrect {
		t.Fatalf("Drop = %v, want correct", got)
	}

	want := []Match{{WordID: "w0", MeaningID: "w0"}, {WordID: "w1", MeaningID: "w1"}}
	got := b.Matches()
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBoard_CheckScoreEqualsTotal(t *testing.T) {
	words := testWords(7)
	b := NewBoard(words, 6, ReverseShuffler)

	for _, w := range words {
		if b.CanCheck() {
			t.Fatal("CanCheck before every word is matched")
		}
		b.Pick(w.ID)
		b.Drop(w.ID)
	}

	if !b.CanCheck() {
		t.Fatal("CanCheck false with all words matched")
	}
	score, complete := b.Check()
	if score != len(words) || !complete {
		t.Errorf("Check = %d, %v; want %d, true", score, complete, len(words))
	}
	if s := b.Summary("2025-03-07"); s.Correct != 7 || s.Incorrect != 0 {
		t.Errorf("summary = %+v", s)
	}
}

func TestBoard_Pagination(t *testing.T) {
	b := NewBoard(testWords(8), 6, IdentityShuffler)

	if !b.Paginated() || b.PageCount() != 2 {
		t.Fatalf("paginated=%v pages=%d", b.Paginated(), b.PageCount())
	}
	if len(b.PageWords()) != 6 || len(b.PageMeanings()) != 6 {
		t.Errorf("page 1 sizes = %d/%d", len(b.PageWords()), len(b.PageMeanings()))
	}

	b.Pick("w7")
	b.Drop("w7")
	b.NextPage()
	if b.Page() != 1 {
		t.Fatalf("page = %d", b.Page())
	}
	if !equalStrings(ids(b.PageWords()), []string{"w6"}) {
		t.Errorf("page 2 words = %v", ids(b.PageWords()))
	}
	if len(b.PageMatches()) != 1 {
		t.Errorf("page 2 matches = %v", b.PageMatches())
	}

	b.NextPage()
	if b.Page() != 1 {
		t.Errorf("NextPage past the end moved to %d", b.Page())
	}
	b.PrevPage()
	if len(b.PageMatches()) != 0 {
		t.Errorf("page 1 shows matches from page 2: %v", b.PageMatches())
	}
}

func TestBoard_SmallListNotPaginated(t *testing.T) {
	b := NewBoard(testWords(5), 6, IdentityShuffler)
	if b.Paginated() || b.PageCount() != 1 {
		t.Errorf("paginated=%v pages=%d", b.Paginated(), b.PageCount())
	}
	if !NewBoard(testWords(6), 6, IdentityShuffler).Paginated() {
		t.Error("six words must show pagination")
	}
}

func TestBoard_ColumnsShuffledIndependently(t *testing.T) {
	calls := 0
	alternating := func(n int, swap func(i, j int)) {
		calls++
		if calls%2 == 0 {
			ReverseShuffler(n, swap)
		}
	}
	b := NewBoard(testWords(3), 6, alternating)

	if !equalStrings(ids(b.PageWords()), []string{"w0", "w1", "w2"}) {
		t.Errorf("words = %v", ids(b.PageWords()))
	}
	if !equalStrings(cardIDs(b.PageMeanings()), []string{"w2", "w1", "w0"}) {
		t.Errorf("meanings = %v", cardIDs(b.PageMeanings()))
	}
}

func TestBoard_Reset(t *testing.T) {
	b := NewBoard(testWords(8), 6, ReverseShuffler)
	order := ids(b.PageWords())

	b.Pick("w7")
	b.Drop("w7")
	b.NextPage()
	b.Reset()

	if b.MatchedCount() != 0 || b.Page() != 0 || b.Checked() {
		t.Errorf("after reset: matched=%d page=%d checked=%v", b.MatchedCount(), b.Page(), b.Checked())
	}
	if !equalStrings(ids(b.PageWords()), order) {
		t.Errorf("reset reshuffled: %v vs %v", ids(b.PageWords()), order)
	}
}

func TestBoard_ChangingPageDropsPick(t *testing.T) {
	b := NewBoard(testWords(8), 6, IdentityShuffler)
	b.Pick("w0")
	b.NextPage()
	if b.Picked() != "" {
		t.Error("pick survived a page change")
	}
}
