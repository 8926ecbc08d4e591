package rewards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/session"
	"github.com/tutelearn/tute/internal/store"
	"github.com/tutelearn/tute/internal/topic"
)

// snapshotKeep bounds how many historical snapshots survive pruning.
const snapshotKeep = 10

// Award is the TUTE point credit produced by a completed session.
type Award struct {
	Points    int
	Reason    string
	SessionID string
	TopicID   string
	AwardedAt time.Time
}

// Service turns completed sessions into durable history: graded answers,
// the session outcome, the TUTE point credit, and a refreshed learner
// snapshot all land in the event log.
type Service struct {
	events store.EventRepo
	snaps  store.SnapshotRepo
}

// NewService creates a rewards service over the given repositories.
func NewService(events store.EventRepo, snaps store.SnapshotRepo) *Service {
	return &Service{events: events, snaps: snaps}
}

// RecordSessionStart appends the start-of-session lifecycle event.
func (s *Service) RecordSessionStart(ctx context.Context, sessionID, learnerID, topicID string) error {
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		LearnerID: learnerID,
		TopicID:   topicID,
		Action:    "start",
	})
	if err != nil {
		return fmt.Errorf("record session start: %w", err)
	}
	return nil
}

// RecordCompletion persists everything a finished session produced: one
// answer event per question, the complete lifecycle event, the reward
// credit, and an updated snapshot. Returns the award for display.
func (s *Service) RecordCompletion(ctx context.Context, rec session.CompletionRecord, questions []topic.Question) (*Award, error) {
	for i, q := range questions {
		var answer *grading.Answer
		if i < len(rec.Answers) {
			answer = rec.Answers[i]
		}
		err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     rec.SessionID,
			TopicID:       rec.TopicID,
			QuestionID:    q.ID,
			QuestionIndex: i,
			QuestionType:  string(q.Type),
			Prompt:        q.Prompt,
			LearnerAnswer: answerDisplay(q, answer),
			CorrectAnswer: correctDisplay(q),
			Correct:       grading.IsCorrect(q, answer),
		})
		if err != nil {
			return nil, fmt.Errorf("record answer %d: %w", i, err)
		}
	}

	duration := int(rec.CompletedAt.Sub(rec.StartedAt).Seconds())
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      rec.SessionID,
		LearnerID:      rec.LearnerID,
		TopicID:        rec.TopicID,
		Action:         "complete",
		Score:          rec.Score,
		TotalQuestions: rec.TotalQuestions,
		Percentage:     rec.Percentage,
		Passed:         rec.Passed,
		TutePoints:     rec.TutePointsEarned,
		DurationSecs:   duration,
	})
	if err != nil {
		return nil, fmt.Errorf("record session complete: %w", err)
	}

	award := &Award{
		Points:    rec.TutePointsEarned,
		Reason:    "topic_completed",
		SessionID: rec.SessionID,
		TopicID:   rec.TopicID,
		AwardedAt: rec.CompletedAt,
	}
	err = s.events.AppendRewardEvent(ctx, store.RewardEventData{
		Amount:    award.Points,
		Reason:    award.Reason,
		SessionID: award.SessionID,
		TopicID:   award.TopicID,
	})
	if err != nil {
		return nil, fmt.Errorf("record reward: %w", err)
	}

	if err := s.refreshSnapshot(ctx, rec); err != nil {
		return nil, err
	}
	return award, nil
}

// Balance returns the learner's total TUTE points.
func (s *Service) Balance(ctx context.Context) (int, error) {
	return s.events.TutePointBalance(ctx)
}

// History returns recent completed sessions, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.SessionSummaryRecord, error) {
	return s.events.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
}

// LatestSnapshot returns the most recent learner snapshot, or nil.
func (s *Service) LatestSnapshot(ctx context.Context) (*store.Snapshot, error) {
	return s.snaps.Latest(ctx)
}

// refreshSnapshot folds the completion into the latest snapshot and saves
// the result. The snapshot keeps the best percentage per topic.
func (s *Service) refreshSnapshot(ctx context.Context, rec session.CompletionRecord) error {
	prev, err := s.snaps.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	data := store.SnapshotData{Version: 1, TopicsCompleted: make(map[string]int)}
	if prev != nil {
		data = prev.Data
		if data.TopicsCompleted == nil {
			data.TopicsCompleted = make(map[string]int)
		}
	}

	data.TutePointBalance += rec.TutePointsEarned
	data.SessionsCompleted++
	if best, ok := data.TopicsCompleted[rec.TopicID]; !ok || rec.Percentage > best {
		data.TopicsCompleted[rec.TopicID] = rec.Percentage
	}

	seq, err := s.events.LastSequence(ctx)
	if err != nil {
		return fmt.Errorf("snapshot sequence: %w", err)
	}

	err = s.snaps.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return s.snaps.Prune(ctx, snapshotKeep)
}

// answerDisplay renders the learner's answer for the event log. Unanswered
// questions render empty.
func answerDisplay(q topic.Question, a *grading.Answer) string {
	if a == nil {
		return ""
	}
	switch q.Type {
	case topic.QuestionSingle, topic.QuestionMultiple:
		return optionList(q, a.Indices)
	case topic.QuestionText:
		return a.Text
	default:
		return ""
	}
}

// correctDisplay renders the canonical answer for the event log.
func correctDisplay(q topic.Question) string {
	switch q.Type {
	case topic.QuestionSingle, topic.QuestionMultiple:
		return optionList(q, q.CorrectIndices)
	case topic.QuestionText:
		return q.CorrectText
	default:
		return ""
	}
}

func optionList(q topic.Question, indices []int) string {
	var parts []string
	for _, i := range indices {
		if i >= 0 && i < len(q.Options) {
			parts = append(parts, q.Options[i])
		}
	}
	return strings.Join(parts, ", ")
}
