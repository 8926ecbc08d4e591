package grading

import (
	"testing"

	"github.com/tutelearn/tute/internal/topic"
)

func multipleQuestion(correct ...int) topic.Question {
	return topic.Question{
		ID:             "q-multi",
		Prompt:         "Pick all that apply",
		Type:           topic.QuestionMultiple,
		Options:        []string{"a", "b", "c", "d"},
		CorrectIndices: correct,
	}
}

func TestIsCorrect_SetEquality(t *testing.T) {
	q := multipleQuestion(0, 2)

	cases := []struct {
		name      string
		submitted []int
		want      bool
	}{
		{"exact order", []int{0, 2}, true},
		{"reversed order", []int{2, 0}, true},
		{"duplicates ignored", []int{0, 2, 2, 0}, true},
		{"superset", []int{0, 2, 1}, false},
		{"subset", []int{0}, false},
		{"disjoint", []int{1, 3}, false},
		{"empty submission", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsCorrect(q, SelectionAnswer(tc.submitted...))
			if got != tc.want {
				t.Errorf("IsCorrect(%v) = %v, want %v", tc.submitted, got, tc.want)
			}
		})
	}
}

func TestIsCorrect_SingleChoice(t *testing.T) {
	q := topic.Question{
		ID:             "q-single",
		Prompt:         "Pick one",
		Type:           topic.QuestionSingle,
		Options:        []string{"a", "b", "c"},
		CorrectIndices: []int{1},
	}

	if !IsCorrect(q, SelectionAnswer(1)) {
		t.Error("expected correct index to grade true")
	}
	if IsCorrect(q, SelectionAnswer(0)) {
		t.Error("expected wrong index to grade false")
	}
	if IsCorrect(q, SelectionAnswer()) {
		t.Error("expected empty submission to grade false")
	}
}

func TestIsCorrect_Text(t *testing.T) {
	q := topic.Question{
		ID:          "q-text",
		Prompt:      "Capital of France?",
		Type:        topic.QuestionText,
		CorrectText: "Paris",
	}

	cases := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact", "Paris", true},
		{"surrounding whitespace", "  paris  ", true},
		{"uppercase", "PARIS", true},
		{"typo", "Pariss", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsCorrect(q, TextAnswer(tc.submitted))
			if got != tc.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tc.submitted, got, tc.want)
			}
		})
	}
}

func TestIsCorrect_MalformedData(t *testing.T) {
	// Missing correct-answer data must grade false, never panic.
	noCorrectSet := multipleQuestion()
	if IsCorrect(noCorrectSet, SelectionAnswer(0)) {
		t.Error("question without correct indices should grade false")
	}

	noCorrectText := topic.Question{ID: "q", Prompt: "p", Type: topic.QuestionText}
	if IsCorrect(noCorrectText, TextAnswer("anything")) {
		t.Error("question without correct text should grade false")
	}

	unknownType := topic.Question{ID: "q", Prompt: "p", Type: "essay"}
	if IsCorrect(unknownType, TextAnswer("anything")) {
		t.Error("unknown question type should grade false")
	}
}

func TestIsCorrect_NilAnswer(t *testing.T) {
	q := multipleQuestion(0)
	if IsCorrect(q, nil) {
		t.Error("unanswered slot should grade false")
	}
}
