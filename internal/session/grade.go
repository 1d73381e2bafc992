package session

import "strings"

// Result is the grading outcome of a single answer.
type Result int

const (
	ResultNone Result = iota // Not graded yet
	ResultCorrect
	ResultPartial
	ResultIncorrect
)

func (r Result) String() string {
	switch r {
	case ResultCorrect:
		return "correct"
	case ResultPartial:
		return "partial"
	case ResultIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Matches reports whether input equals expected, ignoring surrounding
// whitespace and case.
func Matches(input, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(input), strings.TrimSpace(expected))
}

// GradeMeaning grades a free-text answer against a meaning that may hold
// several comma-separated senses.
//
// The whole meaning, compared with Matches, is correct. A single sense of
// a multi-sense meaning is partial, but only when the trimmed input equals
// it exactly, case included. Anything else is incorrect.
func GradeMeaning(input, meaning string) Result {
	if Matches(input, meaning) {
		return ResultCorrect
	}
	if !strings.Contains(meaning, ",") {
		return ResultIncorrect
	}
	input = strings.TrimSpace(input)
	for _, sense := range strings.Split(meaning, ",") {
		if sense = strings.TrimSpace(sense); sense != "" && input == sense {
			return ResultPartial
		}
	}
	return ResultIncorrect
}

// GradeSpelling grades a spelled word. There is no partial credit.
func GradeSpelling(input, word string) Result {
	if Matches(input, word) {
		return ResultCorrect
	}
	return ResultIncorrect
}

// GradeListening combines the independent spelling and meaning checks of a
// dictation answer.
func GradeListening(spellingOK, meaningOK bool) Result {
	switch {
	case spellingOK && meaningOK:
		return ResultCorrect
	case spellingOK || meaningOK:
		return ResultPartial
	default:
		return ResultIncorrect
	}
}
