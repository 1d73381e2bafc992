package session

// Phase represents the current phase of a sequential practice session.
type Phase int

const (
	PhaseAnswering Phase = iota // Accepting input for the current word
	PhaseResult                 // Showing the grade, input locked
	PhaseCompleted              // Past the last word
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseResult:
		return "result"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// sequence is the cursor shared by the quiz and listening sessions.
// index stays within [0, n) and PhaseCompleted is terminal.
type sequence struct {
	n     int
	index int
	phase Phase
}

// next advances the cursor. At the last word it moves to PhaseCompleted
// instead and reports true; that happens at most once.
func (s *sequence) next() bool {
	if s.n == 0 || s.phase == PhaseCompleted {
		return false
	}
	if s.index >= s.n-1 {
		s.phase = PhaseCompleted
		return true
	}
	s.index++
	s.phase = PhaseAnswering
	return false
}

// previous moves back one word. It reports false at the first word.
func (s *sequence) previous() bool {
	if s.phase == PhaseCompleted || s.index == 0 {
		return false
	}
	s.index--
	s.phase = PhaseAnswering
	return true
}

func (s *sequence) answering() bool {
	return s.n > 0 && s.phase == PhaseAnswering
}

// tally counts graded positions for the summary. Positions never graded
// count as passed.
func tally(results []Result) (correct, partial, incorrect, passed int) {
	for _, r := range results {
		switch r {
		case ResultCorrect:
			correct++
		case ResultPartial:
			partial++
		case ResultIncorrect:
			incorrect++
		default:
			passed++
		}
	}
	return correct, partial, incorrect, passed
}
