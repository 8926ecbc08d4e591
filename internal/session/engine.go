package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/topic"
)

// Engine is the single entry point callers use to drive a session. Every
// mutation returns a fresh Snapshot so the caller never needs to reach into
// the session itself.
type Engine struct {
	s *LearningSession
}

// NewSession validates the topic and starts a session in the learning
// phase. Malformed topics fail with InvalidTopicDataError and no session is
// created.
func NewSession(t topic.Topic, learnerID string) (*Engine, error) {
	if err := validateTopic(t); err != nil {
		return nil, err
	}
	return &Engine{
		s: newLearningSession(uuid.NewString(), learnerID, t),
	}, nil
}

// validateTopic rejects topics a session cannot be built from. Catalog
// loading already schema-checks authored files; this guards topics arriving
// from any other path.
func validateTopic(t topic.Topic) error {
	if t.ID == "" {
		return &InvalidTopicDataError{Reason: "missing topic id"}
	}
	if t.LearningContent == nil {
		return &InvalidTopicDataError{Reason: "learning content is missing"}
	}
	if t.QuizQuestions == nil {
		return &InvalidTopicDataError{Reason: "quiz questions are missing"}
	}
	for i, item := range t.LearningContent {
		if item.ID == "" {
			return &InvalidTopicDataError{Reason: fmt.Sprintf("content item %d has no id", i)}
		}
		switch item.Kind {
		case topic.ContentText, topic.ContentVideo, topic.ContentQuiz:
		default:
			return &InvalidTopicDataError{
				Reason: fmt.Sprintf("content item %q has unknown type %q", item.ID, item.Kind),
			}
		}
	}
	return nil
}

// Snapshot returns the current state without mutating anything.
func (e *Engine) Snapshot() Snapshot {
	return e.s.snapshot()
}

// MarkItemComplete marks a content item complete, advancing the content
// cursor or entering the quiz phase as a side effect.
func (e *Engine) MarkItemComplete(itemID string) (Snapshot, error) {
	if err := e.s.MarkItemComplete(itemID); err != nil {
		return e.s.snapshot(), err
	}
	return e.s.snapshot(), nil
}

// RecordVideoProgress reports watched seconds for a video item.
func (e *Engine) RecordVideoProgress(itemID string, watchedSeconds int) (Snapshot, error) {
	if err := e.s.RecordVideoProgress(itemID, watchedSeconds); err != nil {
		return e.s.snapshot(), err
	}
	return e.s.snapshot(), nil
}

// RecordAnswer stores the learner's answer for a quiz question.
func (e *Engine) RecordAnswer(questionIndex int, answer *grading.Answer) (Snapshot, error) {
	if err := e.s.RecordAnswer(questionIndex, answer); err != nil {
		return e.s.snapshot(), err
	}
	return e.s.snapshot(), nil
}

// AdvanceQuestion moves to the next question or, from the last one, grades
// and completes the session.
func (e *Engine) AdvanceQuestion() (Snapshot, error) {
	if err := e.s.AdvanceQuestion(); err != nil {
		return e.s.snapshot(), err
	}
	return e.s.snapshot(), nil
}

// NavigateTo jumps to an item or question index within the current phase.
func (e *Engine) NavigateTo(index int) (Snapshot, error) {
	if err := e.s.NavigateTo(index); err != nil {
		return e.s.snapshot(), err
	}
	return e.s.snapshot(), nil
}

// Retreat moves back one position within the current phase. A no-op at the
// first position or once the session is completed.
func (e *Engine) Retreat() Snapshot {
	switch e.s.phase {
	case PhaseLearning:
		e.s.content.Retreat()
	case PhaseQuiz:
		e.s.question.Retreat()
	}
	return e.s.snapshot()
}

// CompletionRecord returns the durable outcome of a completed session.
// Fails with ErrInvalidPhase while the session is still in progress.
func (e *Engine) CompletionRecord() (CompletionRecord, error) {
	if e.s.phase != PhaseCompleted || e.s.result == nil {
		return CompletionRecord{}, fmt.Errorf("completion record: %w (phase %s)",
			ErrInvalidPhase, e.s.phase)
	}

	answers := make([]*grading.Answer, len(e.s.answers))
	copy(answers, e.s.answers)

	r := e.s.result
	return CompletionRecord{
		SessionID:        e.s.ID,
		LearnerID:        e.s.LearnerID,
		TopicID:          e.s.TopicID,
		Score:            r.Score,
		TotalQuestions:   r.TotalQuestions,
		Percentage:       r.Percentage,
		Passed:           r.Passed,
		TutePointsEarned: r.TutePointsEarned,
		Answers:          answers,
		StartedAt:        e.s.startedAt,
		CompletedAt:      e.s.completedAt,
	}, nil
}
