package session

import (
	"fmt"
	"time"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/scoring"
	"github.com/tutelearn/tute/internal/topic"
)

// Phase is the coarse state of a learning session. It only ever moves
// forward: learning, then quiz, then completed.
type Phase int

const (
	PhaseLearning Phase = iota
	PhaseQuiz
	PhaseCompleted
)

// String returns the phase name used in events and display.
func (p Phase) String() string {
	switch p {
	case PhaseLearning:
		return "learning"
	case PhaseQuiz:
		return "quiz"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// LearningSession is one learner's in-memory attempt at one topic. It owns
// copies of the topic's content and questions taken at creation; the topic
// itself is never consulted again. Not safe for concurrent use: every
// mutation is driven synchronously by a single user action.
type LearningSession struct {
	ID        string
	LearnerID string
	TopicID   string

	phase Phase

	items     []topic.ContentItem
	questions []topic.Question

	content  Cursor
	question Cursor

	completed    map[string]struct{}
	watchSeconds map[string]int
	answers      []*grading.Answer

	result *scoring.Result

	startedAt   time.Time
	completedAt time.Time
}

// newLearningSession wires a fresh session in the learning phase. Only the
// Engine constructs sessions; it performs topic validation first.
func newLearningSession(id, learnerID string, t topic.Topic) *LearningSession {
	items := make([]topic.ContentItem, len(t.LearningContent))
	copy(items, t.LearningContent)
	questions := make([]topic.Question, len(t.QuizQuestions))
	copy(questions, t.QuizQuestions)

	return &LearningSession{
		ID:           id,
		LearnerID:    learnerID,
		TopicID:      t.ID,
		phase:        PhaseLearning,
		items:        items,
		questions:    questions,
		content:      NewCursor(len(items)),
		question:     NewCursor(len(questions)),
		completed:    make(map[string]struct{}),
		watchSeconds: make(map[string]int),
		answers:      make([]*grading.Answer, len(questions)),
		startedAt:    time.Now(),
	}
}

// MarkItemComplete records a content item as finished. Valid only while
// learning. The completion gate is consulted first; a refused gate fails
// with ErrGateNotSatisfied and changes nothing. Re-marking an already
// completed item is a no-op.
//
// On a successful first-time completion: if the current content position is
// not the last, the cursor advances; if it is the last, the session
// transitions to the quiz phase. The transition fires at most once, since
// the phase check rejects any call after it.
func (s *LearningSession) MarkItemComplete(itemID string) error {
	if s.phase != PhaseLearning {
		return fmt.Errorf("mark item complete: %w (phase %s)", ErrInvalidPhase, s.phase)
	}

	item, err := s.itemByID(itemID)
	if err != nil {
		return err
	}

	if !CanComplete(item, s.watchSeconds[itemID]) {
		return fmt.Errorf("item %q: %w", itemID, ErrGateNotSatisfied)
	}

	if _, done := s.completed[itemID]; done {
		return nil
	}
	s.completed[itemID] = struct{}{}

	if !s.content.IsLast() {
		s.content.Advance()
		return nil
	}

	// Last item completed: enter the quiz phase.
	s.phase = PhaseQuiz
	s.question.Reset()
	s.answers = make([]*grading.Answer, len(s.questions))
	return nil
}

// RecordVideoProgress stores the watched time for a video item. The stored
// value is monotonic: replays reporting a smaller time never regress it.
func (s *LearningSession) RecordVideoProgress(itemID string, watchedSeconds int) error {
	if s.phase != PhaseLearning {
		return fmt.Errorf("record video progress: %w (phase %s)", ErrInvalidPhase, s.phase)
	}

	item, err := s.itemByID(itemID)
	if err != nil {
		return err
	}
	if item.Kind != topic.ContentVideo {
		return fmt.Errorf("item %q: %w", itemID, ErrNotVideo)
	}

	if watchedSeconds > s.watchSeconds[itemID] {
		s.watchSeconds[itemID] = watchedSeconds
	}
	return nil
}

// RecordAnswer overwrites the answer for the question at index. Valid only
// during the quiz phase. Grading is deferred to session completion; the
// caller may re-record freely before advancing past the last question.
func (s *LearningSession) RecordAnswer(questionIndex int, answer *grading.Answer) error {
	if s.phase != PhaseQuiz {
		return fmt.Errorf("record answer: %w (phase %s)", ErrInvalidPhase, s.phase)
	}
	if questionIndex < 0 || questionIndex >= len(s.questions) {
		return fmt.Errorf("record answer: %w: %d not in [0, %d)",
			ErrOutOfRange, questionIndex, len(s.questions))
	}

	s.answers[questionIndex] = answer
	return nil
}

// AdvanceQuestion moves to the next question. When already on the last
// question it instead grades the session and transitions to completed.
// Like the quiz transition, the completion edge fires exactly once.
func (s *LearningSession) AdvanceQuestion() error {
	if s.phase != PhaseQuiz {
		return fmt.Errorf("advance question: %w (phase %s)", ErrInvalidPhase, s.phase)
	}

	if !s.question.IsLast() && s.question.Len() > 0 {
		s.question.Advance()
		return nil
	}

	result := scoring.Finalize(s.questions, s.answers, s.items, s.watchSeconds)
	s.result = &result
	s.completedAt = time.Now()
	s.phase = PhaseCompleted
	return nil
}

// NavigateTo re-points the position within the current phase. Navigation
// inside a phase is unrestricted: the learner may jump to any item or
// question, completed or not. Rejected once the session is completed.
func (s *LearningSession) NavigateTo(index int) error {
	switch s.phase {
	case PhaseLearning:
		return s.content.JumpTo(index)
	case PhaseQuiz:
		return s.question.JumpTo(index)
	default:
		return fmt.Errorf("navigate: %w (phase %s)", ErrInvalidPhase, s.phase)
	}
}

// Phase returns the session's current phase.
func (s *LearningSession) Phase() Phase {
	return s.phase
}

// itemByID finds a content item owned by this session.
func (s *LearningSession) itemByID(id string) (topic.ContentItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return topic.ContentItem{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}
