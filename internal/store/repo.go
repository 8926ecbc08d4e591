package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner's aggregate state at a point in time.
type SnapshotData struct {
	Version           int            `json:"version"`
	TutePointBalance  int            `json:"tute_point_balance"`
	SessionsCompleted int            `json:"sessions_completed"`
	TopicsCompleted   map[string]int `json:"topics_completed"` // topic ID -> best percentage
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event. Outcome fields are
// zero on a start event.
type SessionEventData struct {
	SessionID      string
	LearnerID      string
	TopicID        string
	Action         string // "start" or "complete"
	Score          int
	TotalQuestions int
	Percentage     int
	Passed         bool
	TutePoints     int
	DurationSecs   int
}

// AnswerEventData captures one graded quiz answer.
type AnswerEventData struct {
	SessionID     string
	TopicID       string
	QuestionID    string
	QuestionIndex int
	QuestionType  string
	Prompt        string
	LearnerAnswer string // display form, empty if unanswered
	CorrectAnswer string
	Correct       bool
}

// RewardEventData captures a TUTE point credit.
type RewardEventData struct {
	Amount    int
	Reason    string
	SessionID string
	TopicID   string
}

// SessionSummaryRecord is a completed session as read back from the log.
type SessionSummaryRecord struct {
	SessionID      string
	TopicID        string
	Timestamp      time.Time
	Score          int
	TotalQuestions int
	Percentage     int
	Passed         bool
	TutePoints     int
	DurationSecs   int
}

// RewardRecord is a reward event as read back from the log.
type RewardRecord struct {
	Amount    int
	Reason    string
	SessionID string
	TopicID   string
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or completion.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendRewardEvent records a TUTE point credit.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryRewardEvents returns reward credits, newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardRecord, error)

	// TutePointBalance sums all reward credits.
	TutePointBalance(ctx context.Context) (int, error)

	// TopicAccuracy returns the fraction of correct answers recorded for
	// a topic across all sessions, or 0 when none exist.
	TopicAccuracy(ctx context.Context, topicID string) (float64, error)

	// LastSequence returns the highest sequence number issued so far.
	LastSequence(ctx context.Context) (int64, error)
}
