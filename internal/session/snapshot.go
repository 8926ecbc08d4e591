package session

import (
	"time"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/scoring"
	"github.com/tutelearn/tute/internal/topic"
)

// Snapshot is a read-only view of a session at one point in time. Maps and
// the answers slice are copies; mutating a snapshot never touches the
// session. Items and Questions share backing arrays with the session, which
// never modifies them after construction.
type Snapshot struct {
	SessionID string
	LearnerID string
	TopicID   string
	Phase     Phase

	Items     []topic.ContentItem
	Questions []topic.Question

	ContentIndex  int
	QuestionIndex int

	Completed    map[string]bool
	WatchSeconds map[string]int
	Answers      []*grading.Answer

	Result *scoring.Result

	StartedAt   time.Time
	CompletedAt time.Time
}

// snapshot captures the current session state.
func (s *LearningSession) snapshot() Snapshot {
	completed := make(map[string]bool, len(s.completed))
	for id := range s.completed {
		completed[id] = true
	}
	watch := make(map[string]int, len(s.watchSeconds))
	for id, secs := range s.watchSeconds {
		watch[id] = secs
	}
	answers := make([]*grading.Answer, len(s.answers))
	copy(answers, s.answers)

	snap := Snapshot{
		SessionID:     s.ID,
		LearnerID:     s.LearnerID,
		TopicID:       s.TopicID,
		Phase:         s.phase,
		Items:         s.items,
		Questions:     s.questions,
		ContentIndex:  s.content.Index(),
		QuestionIndex: s.question.Index(),
		Completed:     completed,
		WatchSeconds:  watch,
		Answers:       answers,
		StartedAt:     s.startedAt,
		CompletedAt:   s.completedAt,
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}

// CurrentItem returns the content item under the cursor, or false when the
// topic has no learning content.
func (sn Snapshot) CurrentItem() (topic.ContentItem, bool) {
	if len(sn.Items) == 0 {
		return topic.ContentItem{}, false
	}
	return sn.Items[sn.ContentIndex], true
}

// CurrentQuestion returns the question under the cursor, or false when the
// quiz is empty.
func (sn Snapshot) CurrentQuestion() (topic.Question, bool) {
	if len(sn.Questions) == 0 {
		return topic.Question{}, false
	}
	return sn.Questions[sn.QuestionIndex], true
}

// CompletedCount returns how many content items have been marked complete.
func (sn Snapshot) CompletedCount() int {
	return len(sn.Completed)
}

// AnsweredCount returns how many quiz questions have a recorded answer.
func (sn Snapshot) AnsweredCount() int {
	n := 0
	for _, a := range sn.Answers {
		if a != nil {
			n++
		}
	}
	return n
}

// CompletionRecord is the durable outcome of a finished session, the part
// worth persisting once the session itself is discarded.
type CompletionRecord struct {
	SessionID        string
	LearnerID        string
	TopicID          string
	Score            int
	TotalQuestions   int
	Percentage       int
	Passed           bool
	TutePointsEarned int
	Answers          []*grading.Answer
	StartedAt        time.Time
	CompletedAt      time.Time
}
