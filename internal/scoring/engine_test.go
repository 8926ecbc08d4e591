package scoring

import (
	"testing"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/topic"
)

func threeQuestions() []topic.Question {
	return []topic.Question{
		{ID: "q1", Prompt: "p1", Type: topic.QuestionSingle, Options: []string{"a", "b"}, CorrectIndices: []int{0}},
		{ID: "q2", Prompt: "p2", Type: topic.QuestionMultiple, Options: []string{"a", "b", "c"}, CorrectIndices: []int{0, 2}},
		{ID: "q3", Prompt: "p3", Type: topic.QuestionText, CorrectText: "Paris"},
	}
}

func TestFinalize_Formula(t *testing.T) {
	// Two text blocks, one video watched 100s of 120s, 3 questions with
	// 2 answered correctly: 30 + 2*10 + 1*5 = 55, percentage 67, passed.
	items := []topic.ContentItem{
		{ID: "t1", Kind: topic.ContentText, Text: &topic.TextContent{Body: "one"}},
		{ID: "t2", Kind: topic.ContentText, Text: &topic.TextContent{Body: "two"}},
		{ID: "v1", Kind: topic.ContentVideo, Video: &topic.VideoContent{Title: "v", VideoRef: "ref", Duration: 120}},
	}
	answers := []*grading.Answer{
		grading.SelectionAnswer(0),    // correct
		grading.SelectionAnswer(2, 0), // correct (order irrelevant)
		grading.TextAnswer("London"),  // wrong
	}

	r := Finalize(threeQuestions(), answers, items, map[string]int{"v1": 100})

	if r.Score != 2 {
		t.Errorf("Score = %d, want 2", r.Score)
	}
	if r.TutePointsEarned != 55 {
		t.Errorf("TutePointsEarned = %d, want 55", r.TutePointsEarned)
	}
	if r.Percentage != 67 {
		t.Errorf("Percentage = %d, want 67", r.Percentage)
	}
	if !r.Passed {
		t.Error("expected Passed = true at 67%")
	}
	if r.VideoBonusCount != 1 {
		t.Errorf("VideoBonusCount = %d, want 1", r.VideoBonusCount)
	}
}

func TestFinalize_UnansweredGradeIncorrect(t *testing.T) {
	answers := []*grading.Answer{grading.SelectionAnswer(0), nil, nil}

	r := Finalize(threeQuestions(), answers, nil, nil)

	if r.Score != 1 {
		t.Errorf("Score = %d, want 1", r.Score)
	}
	if r.Percentage != 33 {
		t.Errorf("Percentage = %d, want 33", r.Percentage)
	}
	if r.Passed {
		t.Error("expected Passed = false at 33%")
	}
	want := []bool{true, false, false}
	for i, c := range r.Correct {
		if c != want[i] {
			t.Errorf("Correct[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestFinalize_VideoBonusIgnoresGate(t *testing.T) {
	// Any nonzero watch time earns the bonus, even far below the 80% gate.
	items := []topic.ContentItem{
		{ID: "v1", Kind: topic.ContentVideo, Video: &topic.VideoContent{Title: "v", VideoRef: "r", Duration: 600}},
		{ID: "v2", Kind: topic.ContentVideo, Video: &topic.VideoContent{Title: "w", VideoRef: "r2", Duration: 600}},
	}

	r := Finalize(nil, nil, items, map[string]int{"v1": 3})

	if r.VideoBonusCount != 1 {
		t.Errorf("VideoBonusCount = %d, want 1 (v2 unwatched)", r.VideoBonusCount)
	}
	if r.TutePointsEarned != BaseCompletionPoints+PointsPerVideo {
		t.Errorf("TutePointsEarned = %d, want %d", r.TutePointsEarned, BaseCompletionPoints+PointsPerVideo)
	}
}

func TestFinalize_ZeroQuestions(t *testing.T) {
	r := Finalize(nil, nil, nil, nil)

	if r.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100 for zero questions", r.Percentage)
	}
	if !r.Passed {
		t.Error("a topic with zero questions is trivially passed")
	}
	if r.TutePointsEarned != BaseCompletionPoints {
		t.Errorf("TutePointsEarned = %d, want %d", r.TutePointsEarned, BaseCompletionPoints)
	}
}

func TestResult_Breakdown(t *testing.T) {
	r := Result{Score: 3, VideoBonusCount: 2}

	if r.BasePoints() != 30 {
		t.Errorf("BasePoints = %d, want 30", r.BasePoints())
	}
	if r.CorrectPoints() != 30 {
		t.Errorf("CorrectPoints = %d, want 30", r.CorrectPoints())
	}
	if r.VideoPoints() != 10 {
		t.Errorf("VideoPoints = %d, want 10", r.VideoPoints())
	}
}
