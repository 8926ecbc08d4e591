package session

import (
	"errors"
	"testing"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/topic"
)

func testTopic() topic.Topic {
	return topic.Topic{
		ID:    "topic-1",
		Title: "Test Topic",
		LearningContent: []topic.ContentItem{
			{ID: "c1", Kind: topic.ContentText, Text: &topic.TextContent{Body: "read me"}},
			{ID: "c2", Kind: topic.ContentVideo, Video: &topic.VideoContent{
				Title: "Watch me", VideoRef: "vid-1", Duration: 100,
			}},
			{ID: "c3", Kind: topic.ContentText, Text: &topic.TextContent{Body: "last"}},
		},
		QuizQuestions: []topic.Question{
			{ID: "q1", Prompt: "1+1?", Type: topic.QuestionSingle, Options: []string{"1", "2"}, CorrectIndices: []int{1}},
			{ID: "q2", Prompt: "primes?", Type: topic.QuestionMultiple, Options: []string{"2", "3", "4"}, CorrectIndices: []int{0, 1}},
		},
	}
}

func newTestSession(t *testing.T) *LearningSession {
	t.Helper()
	return newLearningSession("sess-1", "learner-1", testTopic())
}

// completeLearning drives a session through all content into the quiz phase.
func completeLearning(t *testing.T, s *LearningSession) {
	t.Helper()
	if err := s.MarkItemComplete("c1"); err != nil {
		t.Fatalf("complete c1: %v", err)
	}
	if err := s.RecordVideoProgress("c2", 90); err != nil {
		t.Fatalf("watch c2: %v", err)
	}
	if err := s.MarkItemComplete("c2"); err != nil {
		t.Fatalf("complete c2: %v", err)
	}
	if err := s.MarkItemComplete("c3"); err != nil {
		t.Fatalf("complete c3: %v", err)
	}
}

func TestMarkItemComplete_AdvancesCursor(t *testing.T) {
	s := newTestSession(t)

	if err := s.MarkItemComplete("c1"); err != nil {
		t.Fatalf("MarkItemComplete: %v", err)
	}
	if s.content.Index() != 1 {
		t.Errorf("content index = %d, want 1", s.content.Index())
	}
	if s.phase != PhaseLearning {
		t.Errorf("phase = %s, want learning", s.phase)
	}
}

func TestMarkItemComplete_GateBlocksVideo(t *testing.T) {
	s := newTestSession(t)
	s.MarkItemComplete("c1")

	err := s.MarkItemComplete("c2")
	if !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("err = %v, want ErrGateNotSatisfied", err)
	}
	if _, done := s.completed["c2"]; done {
		t.Error("a gated item must not be recorded as complete")
	}
	if s.content.Index() != 1 {
		t.Errorf("failed completion moved the cursor to %d", s.content.Index())
	}

	// 79/100 is still short of the 80% gate.
	s.RecordVideoProgress("c2", 79)
	if err := s.MarkItemComplete("c2"); !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("err at 79%% = %v, want ErrGateNotSatisfied", err)
	}

	s.RecordVideoProgress("c2", 80)
	if err := s.MarkItemComplete("c2"); err != nil {
		t.Fatalf("err at 80%% = %v, want nil", err)
	}
}

func TestMarkItemComplete_Idempotent(t *testing.T) {
	s := newTestSession(t)
	s.MarkItemComplete("c1")

	// Jump back and re-mark: no error, no cursor movement, no double count.
	if err := s.NavigateTo(0); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	if err := s.MarkItemComplete("c1"); err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	if s.content.Index() != 0 {
		t.Errorf("re-mark moved the cursor to %d", s.content.Index())
	}
	if len(s.completed) != 1 {
		t.Errorf("completed count = %d, want 1", len(s.completed))
	}
}

func TestMarkItemComplete_UnknownItem(t *testing.T) {
	s := newTestSession(t)

	if err := s.MarkItemComplete("nope"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestTransition_LearningToQuiz(t *testing.T) {
	s := newTestSession(t)
	completeLearning(t, s)

	if s.phase != PhaseQuiz {
		t.Fatalf("phase = %s, want quiz", s.phase)
	}
	if s.question.Index() != 0 {
		t.Errorf("question index = %d, want 0", s.question.Index())
	}
	if len(s.answers) != 2 {
		t.Errorf("answers len = %d, want 2", len(s.answers))
	}
	for i, a := range s.answers {
		if a != nil {
			t.Errorf("answers[%d] not nil at quiz start", i)
		}
	}

	// The edge is one-shot: learning operations are rejected afterwards.
	if err := s.MarkItemComplete("c1"); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("MarkItemComplete in quiz = %v, want ErrInvalidPhase", err)
	}
	if err := s.RecordVideoProgress("c2", 100); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("RecordVideoProgress in quiz = %v, want ErrInvalidPhase", err)
	}
}

func TestTransition_TriggersOnLastPosition(t *testing.T) {
	// Completing the last item while positioned on it transitions even when
	// earlier items were completed out of order.
	s := newTestSession(t)
	if err := s.NavigateTo(2); err != nil {
		t.Fatalf("NavigateTo: %v", err)
	}
	if err := s.MarkItemComplete("c3"); err != nil {
		t.Fatalf("complete c3: %v", err)
	}
	if s.phase != PhaseQuiz {
		t.Errorf("phase = %s, want quiz after completing the last position", s.phase)
	}
}

func TestRecordVideoProgress_Monotonic(t *testing.T) {
	s := newTestSession(t)

	s.RecordVideoProgress("c2", 50)
	s.RecordVideoProgress("c2", 30) // replay from earlier position
	if s.watchSeconds["c2"] != 50 {
		t.Errorf("watchSeconds = %d, want 50 (never regresses)", s.watchSeconds["c2"])
	}
	s.RecordVideoProgress("c2", 70)
	if s.watchSeconds["c2"] != 70 {
		t.Errorf("watchSeconds = %d, want 70", s.watchSeconds["c2"])
	}
}

func TestRecordVideoProgress_NonVideo(t *testing.T) {
	s := newTestSession(t)

	if err := s.RecordVideoProgress("c1", 10); !errors.Is(err, ErrNotVideo) {
		t.Errorf("err = %v, want ErrNotVideo", err)
	}
}

func TestRecordAnswer(t *testing.T) {
	s := newTestSession(t)

	// Rejected before the quiz phase.
	if err := s.RecordAnswer(0, grading.SelectionAnswer(1)); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("err in learning = %v, want ErrInvalidPhase", err)
	}

	completeLearning(t, s)

	if err := s.RecordAnswer(0, grading.SelectionAnswer(1)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	// Re-recording overwrites.
	if err := s.RecordAnswer(0, grading.SelectionAnswer(0)); err != nil {
		t.Fatalf("re-record: %v", err)
	}
	if got := s.answers[0]; got == nil || len(got.Indices) != 1 || got.Indices[0] != 0 {
		t.Errorf("answers[0] = %+v, want overwritten selection {0}", got)
	}

	if err := s.RecordAnswer(2, grading.SelectionAnswer(0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out-of-range index = %v, want ErrOutOfRange", err)
	}
	if err := s.RecordAnswer(-1, grading.SelectionAnswer(0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative index = %v, want ErrOutOfRange", err)
	}
}

func TestAdvanceQuestion_CompletesAndGrades(t *testing.T) {
	s := newTestSession(t)
	completeLearning(t, s)

	s.RecordAnswer(0, grading.SelectionAnswer(1))    // correct
	s.RecordAnswer(1, grading.SelectionAnswer(0, 1)) // correct

	if err := s.AdvanceQuestion(); err != nil {
		t.Fatalf("advance to q2: %v", err)
	}
	if s.phase != PhaseQuiz {
		t.Fatalf("phase = %s, want quiz before the last question is passed", s.phase)
	}

	if err := s.AdvanceQuestion(); err != nil {
		t.Fatalf("advance past last: %v", err)
	}
	if s.phase != PhaseCompleted {
		t.Fatalf("phase = %s, want completed", s.phase)
	}
	if s.result == nil {
		t.Fatal("completed session has no result")
	}
	if s.result.Score != 2 {
		t.Errorf("Score = %d, want 2", s.result.Score)
	}
	// 30 base + 2*10 correct + 5 for the watched video.
	if s.result.TutePointsEarned != 55 {
		t.Errorf("TutePointsEarned = %d, want 55", s.result.TutePointsEarned)
	}
	if s.completedAt.IsZero() {
		t.Error("completedAt not set")
	}

	// Completion is one-shot: every mutation is rejected afterwards.
	if err := s.AdvanceQuestion(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("AdvanceQuestion after completion = %v, want ErrInvalidPhase", err)
	}
	if err := s.RecordAnswer(0, grading.SelectionAnswer(0)); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("RecordAnswer after completion = %v, want ErrInvalidPhase", err)
	}
	if err := s.NavigateTo(0); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("NavigateTo after completion = %v, want ErrInvalidPhase", err)
	}
}

func TestAdvanceQuestion_UnansweredAllowed(t *testing.T) {
	// The learner may finish without answering; unanswered grades incorrect.
	s := newTestSession(t)
	completeLearning(t, s)

	if err := s.AdvanceQuestion(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := s.AdvanceQuestion(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if s.result.Score != 0 {
		t.Errorf("Score = %d, want 0", s.result.Score)
	}
	if s.result.Passed {
		t.Error("expected Passed = false with no answers")
	}
}

func TestNavigateTo_PhaseScoped(t *testing.T) {
	s := newTestSession(t)

	if err := s.NavigateTo(2); err != nil {
		t.Fatalf("NavigateTo(2): %v", err)
	}
	if err := s.NavigateTo(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NavigateTo(3) = %v, want ErrOutOfRange", err)
	}

	s.NavigateTo(0)
	completeLearning(t, s)

	// Quiz phase bounds come from the question list, not the content list.
	if err := s.NavigateTo(1); err != nil {
		t.Fatalf("NavigateTo(1) in quiz: %v", err)
	}
	if err := s.NavigateTo(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NavigateTo(2) in quiz = %v, want ErrOutOfRange", err)
	}
}
