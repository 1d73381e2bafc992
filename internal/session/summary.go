package session

import "fmt"

// Mode identifies a practice session variant.
type Mode string

const (
	ModeQuiz      Mode = "quiz"
	ModeDragDrop  Mode = "dragdrop"
	ModeListening Mode = "listening"
)

// Modes lists the practice modes in menu order.
var Modes = []Mode{ModeQuiz, ModeDragDrop, ModeListening}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown practice mode %q (want quiz, dragdrop or listening)", s)
}

// Label is the human-readable name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeQuiz:
		return "Quiz"
	case ModeDragDrop:
		return "Drag & Drop"
	case ModeListening:
		return "Listening"
	default:
		return string(m)
	}
}

// Summary holds the data displayed on the completion screen.
type Summary struct {
	Mode      Mode
	Date      string
	Total     int
	Correct   int
	Partial   int
	Incorrect int
	Passed    int
}

// Accuracy is the share of fully correct answers, in [0, 1].
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}
