package session

import "testing"

func TestMatches_TrimAndCase(t *testing.T) {
	if !Matches(" Apple ", "apple") {
		t.Error(`expected " Apple " to match "apple"`)
	}
	if Matches("apples", "apple") {
		t.Error(`expected "apples" not to match "apple"`)
	}
}

func TestGradeMeaning(t *testing.T) {
	tests := []struct {
		input, meaning string
		want           Result
	}{
		{"jog", "run, jog", ResultPartial},
		{"run, jog", "run, jog", ResultCorrect},
		{"walk", "run, jog", ResultIncorrect},
		{" jog ", "run, jog", ResultPartial},
		{"JOG", "run, jog", ResultIncorrect},
		{" RUN ", "run, jog", ResultIncorrect},
		{"RUN, JOG", "run, jog", ResultCorrect},
		{"run,jog", "run, jog", ResultIncorrect},
		{"고양이", "고양이", ResultCorrect},
		{"고양", "고양이", ResultIncorrect},
		{"", "run, jog", ResultIncorrect},
	}

	for _, tt := range tests {
		if got := GradeMeaning(tt.input, tt.meaning); got != tt.want {
			t.Errorf("GradeMeaning(%q, %q) = %v, want %v", tt.input, tt.meaning, got, tt.want)
		}
	}
}

func TestGradeSpelling_NoPartialCredit(t *testing.T) {
	if got := GradeSpelling("Cat ", "cat"); got != ResultCorrect {
		t.Errorf("got %v, want correct", got)
	}
	if got := GradeSpelling("cats", "cat"); got != ResultIncorrect {
		t.Errorf("got %v, want incorrect", got)
	}
}

func TestGradeListening(t *testing.T) {
	tests := []struct {
		spelling, meaning bool
		want              Result
	}{
		{true, true, ResultCorrect},
		{true, false, ResultPartial},
		{false, true, ResultPartial},
		{false, false, ResultIncorrect},
	}
	for _, tt := range tests {
		if got := GradeListening(tt.spelling, tt.meaning); got != tt.want {
			t.Errorf("GradeListening(%v, %v) = %v, want %v", tt.spelling, tt.meaning, got, tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	if ResultPartial.String() != "partial" {
		t.Errorf("ResultPartial.String() = %q", ResultPartial.String())
	}
	if ResultNone.String() != "none" {
		t.Errorf("ResultNone.String() = %q", ResultNone.String())
	}
}
