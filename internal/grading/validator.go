package grading

import (
	"strings"

	"github.com/tutelearn/tute/internal/topic"
)

// Answer is one submitted answer. Indices carries the selected option
// indices for single/multiple questions; Text carries the free-text reply.
// A nil *Answer slot means the question was never answered.
type Answer struct {
	Indices []int
	Text    string
}

// SelectionAnswer builds an answer from selected option indices.
func SelectionAnswer(indices ...int) *Answer {
	return &Answer{Indices: indices}
}

// TextAnswer builds an answer from a free-text reply.
func TextAnswer(text string) *Answer {
	return &Answer{Text: text}
}

// IsCorrect reports whether the submitted answer matches the question's
// expected answer. It is a pure predicate: it never mutates its arguments
// and never fails. Malformed or missing correct-answer data simply grades
// as incorrect.
//
// Rules:
//   - single/multiple: submitted and correct index sets must be equal as
//     sets (order and duplicates ignored). An empty submission is always
//     incorrect.
//   - text: trimmed, case-insensitive string equality. No fuzzy matching.
func IsCorrect(q topic.Question, a *Answer) bool {
	if a == nil {
		return false
	}

	switch q.Type {
	case topic.QuestionSingle, topic.QuestionMultiple:
		return setsEqual(a.Indices, q.CorrectIndices)
	case topic.QuestionText:
		want := strings.ToLower(strings.TrimSpace(q.CorrectText))
		if want == "" {
			return false
		}
		got := strings.ToLower(strings.TrimSpace(a.Text))
		return got == want
	default:
		return false
	}
}

// setsEqual compares two index slices as sets. Empty submissions and
// empty correct sets both grade as incorrect.
func setsEqual(submitted, correct []int) bool {
	if len(submitted) == 0 || len(correct) == 0 {
		return false
	}

	want := make(map[int]struct{}, len(correct))
	for _, i := range correct {
		want[i] = struct{}{}
	}
	got := make(map[int]struct{}, len(submitted))
	for _, i := range submitted {
		got[i] = struct{}{}
	}

	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if _, ok := want[i]; !ok {
			return false
		}
	}
	return true
}
