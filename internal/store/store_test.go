package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		LearnerID: "learner-1",
		TopicID:   "budgeting",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		LearnerID:      "learner-1",
		TopicID:        "budgeting",
		Action:         "complete",
		Score:          2,
		TotalQuestions: 3,
		Percentage:     67,
		Passed:         true,
		TutePoints:     55,
		DurationSecs:   420,
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}

	// Only complete events show up as summaries.
	records, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("summaries = %d, want 1", len(records))
	}
	r := records[0]
	if r.SessionID != "sess-1" || r.TopicID != "budgeting" {
		t.Errorf("record ids = %q/%q", r.SessionID, r.TopicID)
	}
	if r.Score != 2 || r.TotalQuestions != 3 || r.Percentage != 67 || !r.Passed {
		t.Errorf("record outcome = %+v", r)
	}
	if r.TutePoints != 55 {
		t.Errorf("TutePoints = %d, want 55", r.TutePoints)
	}
}

func TestRewardBalance(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	balance, err := repo.TutePointBalance(ctx)
	if err != nil {
		t.Fatalf("balance (empty): %v", err)
	}
	if balance != 0 {
		t.Errorf("empty balance = %d, want 0", balance)
	}

	for _, amount := range []int{55, 40} {
		err := repo.AppendRewardEvent(ctx, RewardEventData{
			Amount:    amount,
			Reason:    "topic_completed",
			SessionID: "sess-1",
			TopicID:   "budgeting",
		})
		if err != nil {
			t.Fatalf("append reward %d: %v", amount, err)
		}
	}

	balance, err = repo.TutePointBalance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 95 {
		t.Errorf("balance = %d, want 95", balance)
	}

	records, err := repo.QueryRewardEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query rewards: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("rewards = %d, want 1 (limit)", len(records))
	}
	if records[0].Amount != 40 {
		t.Errorf("newest reward = %d, want 40", records[0].Amount)
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.TopicAccuracy(ctx, "budgeting")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("empty accuracy = %v, want 0", acc)
	}

	answers := []bool{true, true, false, true}
	for i, correct := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     "sess-1",
			TopicID:       "budgeting",
			QuestionID:    "q1",
			QuestionIndex: i,
			QuestionType:  "single",
			Prompt:        "p",
			CorrectAnswer: "a",
			Correct:       correct,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	acc, err = repo.TopicAccuracy(ctx, "budgeting")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:           1,
			TutePointBalance:  110,
			SessionsCompleted: 2,
			TopicsCompleted:   map[string]int{"budgeting": 67},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TutePointBalance != 110 {
		t.Errorf("balance = %d, want 110", snap.Data.TutePointBalance)
	}
	if snap.Data.TopicsCompleted["budgeting"] != 67 {
		t.Errorf("topics = %v, want budgeting: 67", snap.Data.TopicsCompleted)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}
