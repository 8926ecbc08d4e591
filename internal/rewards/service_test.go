package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/session"
	"github.com/tutelearn/tute/internal/store"
	"github.com/tutelearn/tute/internal/topic"
)

// mockEventRepo implements store.EventRepo for rewards tests.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	rewardEvents  []store.RewardEventData
	seq           int64
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	m.seq++
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	m.seq++
	return nil
}
func (m *mockEventRepo) AppendRewardEvent(_ context.Context, data store.RewardEventData) error {
	m.rewardEvents = append(m.rewardEvents, data)
	m.seq++
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryRewardEvents(_ context.Context, _ store.QueryOpts) ([]store.RewardRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) TutePointBalance(_ context.Context) (int, error) {
	total := 0
	for _, e := range m.rewardEvents {
		total += e.Amount
	}
	return total, nil
}
func (m *mockEventRepo) TopicAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) LastSequence(_ context.Context) (int64, error) {
	return m.seq, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for rewards tests.
type mockSnapshotRepo struct {
	saved []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func testQuestions() []topic.Question {
	return []topic.Question{
		{ID: "q1", Prompt: "Pick A", Type: topic.QuestionSingle, Options: []string{"A", "B"}, CorrectIndices: []int{0}},
		{ID: "q2", Prompt: "Capital?", Type: topic.QuestionText, CorrectText: "Paris"},
	}
}

func testRecord() session.CompletionRecord {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return session.CompletionRecord{
		SessionID:        "sess-1",
		LearnerID:        "learner-1",
		TopicID:          "budgeting",
		Score:            1,
		TotalQuestions:   2,
		Percentage:       50,
		Passed:           false,
		TutePointsEarned: 40,
		Answers: []*grading.Answer{
			grading.SelectionAnswer(0),
			nil,
		},
		StartedAt:   start,
		CompletedAt: start.Add(7 * time.Minute),
	}
}

func TestRecordCompletion_AppendsAllEvents(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	award, err := svc.RecordCompletion(ctx, testRecord(), testQuestions())
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	if award.Points != 40 {
		t.Errorf("award points = %d, want 40", award.Points)
	}
	if len(events.answerEvents) != 2 {
		t.Fatalf("answer events = %d, want 2", len(events.answerEvents))
	}

	first := events.answerEvents[0]
	if !first.Correct || first.LearnerAnswer != "A" || first.CorrectAnswer != "A" {
		t.Errorf("answer event 0 = %+v", first)
	}
	second := events.answerEvents[1]
	if second.Correct || second.LearnerAnswer != "" {
		t.Errorf("unanswered question event = %+v", second)
	}
	if second.CorrectAnswer != "Paris" {
		t.Errorf("correct answer = %q, want Paris", second.CorrectAnswer)
	}

	if len(events.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessionEvents))
	}
	se := events.sessionEvents[0]
	if se.Action != "complete" || se.Score != 1 || se.TutePoints != 40 {
		t.Errorf("session event = %+v", se)
	}
	if se.DurationSecs != 420 {
		t.Errorf("duration = %d, want 420", se.DurationSecs)
	}

	if len(events.rewardEvents) != 1 || events.rewardEvents[0].Amount != 40 {
		t.Errorf("reward events = %+v", events.rewardEvents)
	}
}

func TestRecordCompletion_SnapshotAccumulates(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, testRecord(), testQuestions()); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	// Second run of the same topic with a better result.
	rec := testRecord()
	rec.SessionID = "sess-2"
	rec.Percentage = 100
	rec.TutePointsEarned = 55
	if _, err := svc.RecordCompletion(ctx, rec, testQuestions()); err != nil {
		t.Fatalf("second completion: %v", err)
	}

	snap, _ := snaps.Latest(ctx)
	if snap == nil {
		t.Fatal("no snapshot saved")
	}
	if snap.Data.TutePointBalance != 95 {
		t.Errorf("balance = %d, want 95", snap.Data.TutePointBalance)
	}
	if snap.Data.SessionsCompleted != 2 {
		t.Errorf("sessions = %d, want 2", snap.Data.SessionsCompleted)
	}
	if snap.Data.TopicsCompleted["budgeting"] != 100 {
		t.Errorf("best percentage = %d, want 100", snap.Data.TopicsCompleted["budgeting"])
	}
}

func TestRecordCompletion_BestPercentageKept(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	svc := NewService(events, snaps)
	ctx := context.Background()

	rec := testRecord()
	rec.Percentage = 100
	if _, err := svc.RecordCompletion(ctx, rec, testQuestions()); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	worse := testRecord()
	worse.SessionID = "sess-2"
	worse.Percentage = 50
	if _, err := svc.RecordCompletion(ctx, worse, testQuestions()); err != nil {
		t.Fatalf("second completion: %v", err)
	}

	snap, _ := snaps.Latest(ctx)
	if snap.Data.TopicsCompleted["budgeting"] != 100 {
		t.Errorf("a worse run overwrote the best percentage: %d", snap.Data.TopicsCompleted["budgeting"])
	}
}

func TestRecordSessionStart(t *testing.T) {
	events := &mockEventRepo{}
	svc := NewService(events, &mockSnapshotRepo{})

	if err := svc.RecordSessionStart(context.Background(), "sess-1", "learner-1", "budgeting"); err != nil {
		t.Fatalf("RecordSessionStart: %v", err)
	}
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "start" {
		t.Errorf("session events = %+v", events.sessionEvents)
	}
}

func TestAnswerDisplay_MultipleSelection(t *testing.T) {
	q := topic.Question{
		Type:    topic.QuestionMultiple,
		Options: []string{"red", "green", "blue"},
	}
	got := answerDisplay(q, grading.SelectionAnswer(0, 2))
	if got != "red, blue" {
		t.Errorf("answerDisplay = %q, want %q", got, "red, blue")
	}
}
