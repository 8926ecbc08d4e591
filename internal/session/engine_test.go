package session

import (
	"errors"
	"testing"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/topic"
)

func TestNewSession_ValidatesTopic(t *testing.T) {
	var invalid *InvalidTopicDataError

	_, err := NewSession(topic.Topic{ID: "t", QuizQuestions: []topic.Question{}}, "learner")
	if !errors.As(err, &invalid) {
		t.Errorf("nil learning content: err = %v, want InvalidTopicDataError", err)
	}

	_, err = NewSession(topic.Topic{ID: "t", LearningContent: []topic.ContentItem{}}, "learner")
	if !errors.As(err, &invalid) {
		t.Errorf("nil quiz questions: err = %v, want InvalidTopicDataError", err)
	}

	bad := testTopic()
	bad.LearningContent[0].Kind = "interpretive-dance"
	_, err = NewSession(bad, "learner")
	if !errors.As(err, &invalid) {
		t.Errorf("unknown content kind: err = %v, want InvalidTopicDataError", err)
	}

	// Empty (but present) lists are a valid, trivially completable topic.
	eng, err := NewSession(topic.Topic{
		ID:              "empty",
		LearningContent: []topic.ContentItem{},
		QuizQuestions:   []topic.Question{},
	}, "learner")
	if err != nil {
		t.Fatalf("empty topic: %v", err)
	}
	if eng.Snapshot().Phase != PhaseLearning {
		t.Errorf("phase = %s, want learning", eng.Snapshot().Phase)
	}
}

func TestEngine_FullRun(t *testing.T) {
	eng, err := NewSession(testTopic(), "learner-1")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	snap := eng.Snapshot()
	if snap.SessionID == "" {
		t.Error("session has no id")
	}
	if snap.Phase != PhaseLearning {
		t.Fatalf("phase = %s, want learning", snap.Phase)
	}

	if _, err := eng.MarkItemComplete("c1"); err != nil {
		t.Fatalf("complete c1: %v", err)
	}
	if _, err := eng.RecordVideoProgress("c2", 95); err != nil {
		t.Fatalf("watch c2: %v", err)
	}
	if _, err := eng.MarkItemComplete("c2"); err != nil {
		t.Fatalf("complete c2: %v", err)
	}
	snap, err = eng.MarkItemComplete("c3")
	if err != nil {
		t.Fatalf("complete c3: %v", err)
	}
	if snap.Phase != PhaseQuiz {
		t.Fatalf("phase = %s, want quiz", snap.Phase)
	}

	if _, err := eng.RecordAnswer(0, grading.SelectionAnswer(1)); err != nil {
		t.Fatalf("answer q1: %v", err)
	}
	if _, err := eng.RecordAnswer(1, grading.SelectionAnswer(0, 1)); err != nil {
		t.Fatalf("answer q2: %v", err)
	}
	if _, err := eng.AdvanceQuestion(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	snap, err = eng.AdvanceQuestion()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if snap.Phase != PhaseCompleted {
		t.Fatalf("phase = %s, want completed", snap.Phase)
	}
	if snap.Result == nil || snap.Result.Score != 2 {
		t.Fatalf("snapshot result = %+v, want score 2", snap.Result)
	}

	rec, err := eng.CompletionRecord()
	if err != nil {
		t.Fatalf("CompletionRecord: %v", err)
	}
	if rec.Score != 2 || rec.TotalQuestions != 2 {
		t.Errorf("record = %d/%d, want 2/2", rec.Score, rec.TotalQuestions)
	}
	if rec.TutePointsEarned != 55 {
		t.Errorf("TutePointsEarned = %d, want 55", rec.TutePointsEarned)
	}
	if !rec.Passed || rec.Percentage != 100 {
		t.Errorf("percentage/passed = %d/%v, want 100/true", rec.Percentage, rec.Passed)
	}
	if rec.CompletedAt.Before(rec.StartedAt) {
		t.Error("CompletedAt before StartedAt")
	}
}

func TestEngine_CompletionRecordBeforeDone(t *testing.T) {
	eng, err := NewSession(testTopic(), "learner-1")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := eng.CompletionRecord(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("err = %v, want ErrInvalidPhase", err)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	eng, err := NewSession(testTopic(), "learner-1")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	eng.MarkItemComplete("c1")

	snap := eng.Snapshot()
	snap.Completed["c3"] = true
	snap.WatchSeconds["c2"] = 9999

	fresh := eng.Snapshot()
	if fresh.Completed["c3"] {
		t.Error("mutating a snapshot leaked into the session")
	}
	if fresh.WatchSeconds["c2"] != 0 {
		t.Error("mutating snapshot watch times leaked into the session")
	}
}

func TestSnapshot_Accessors(t *testing.T) {
	eng, err := NewSession(testTopic(), "learner-1")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	snap := eng.Snapshot()

	item, ok := snap.CurrentItem()
	if !ok || item.ID != "c1" {
		t.Errorf("CurrentItem = %v/%v, want c1", item.ID, ok)
	}
	if snap.CompletedCount() != 0 {
		t.Errorf("CompletedCount = %d, want 0", snap.CompletedCount())
	}
	if snap.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", snap.AnsweredCount())
	}
}

func TestEngine_Retreat(t *testing.T) {
	eng, err := NewSession(testTopic(), "learner-1")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	snap := eng.Retreat()
	if snap.ContentIndex != 0 {
		t.Errorf("retreat at start moved to %d", snap.ContentIndex)
	}

	eng.MarkItemComplete("c1")
	snap = eng.Retreat()
	if snap.ContentIndex != 0 {
		t.Errorf("ContentIndex = %d, want 0 after retreat", snap.ContentIndex)
	}
}
