package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/rewards"
	"github.com/tutelearn/tute/internal/router"
	"github.com/tutelearn/tute/internal/screen"
	"github.com/tutelearn/tute/internal/screens/summary"
	sess "github.com/tutelearn/tute/internal/session"
	"github.com/tutelearn/tute/internal/topic"
	"github.com/tutelearn/tute/internal/ui/components"
	"github.com/tutelearn/tute/internal/ui/layout"
)

// TopicScreen drives one learning session: content items first, then the
// quiz, then a hand-off to the summary screen.
type TopicScreen struct {
	eng        *sess.Engine
	rewardsSvc *rewards.Service
	top        topic.Topic
	snap       sess.Snapshot

	// Learning phase.
	paused  bool
	gateMsg string

	// Practice question shown as learning content. Feedback here is a
	// preview only; nothing is graded until the quiz.
	practice        components.ChoiceList
	practiceInput   components.TextInput
	practiceChecked bool
	practiceCorrect bool
	practiceItemID  string

	// Quiz phase inputs, rebuilt per question.
	choice components.ChoiceList
	checks components.CheckList
	input  components.TextInput

	saving    bool
	quitAsked bool
	errMsg    string
}

var _ screen.Screen = (*TopicScreen)(nil)
var _ screen.KeyHintProvider = (*TopicScreen)(nil)

// New creates a TopicScreen for the given topic. Construction fails only
// on malformed topic data.
func New(t topic.Topic, learnerID string, rewardsSvc *rewards.Service) (*TopicScreen, error) {
	eng, err := sess.NewSession(t, learnerID)
	if err != nil {
		return nil, err
	}
	s := &TopicScreen{
		eng:        eng,
		rewardsSvc: rewardsSvc,
		top:        t,
		snap:       eng.Snapshot(),
	}
	s.syncPractice()
	return s, nil
}

func (s *TopicScreen) Init() tea.Cmd {
	return tea.Batch(s.recordStart(), playTick())
}

func (s *TopicScreen) Title() string {
	return s.top.Title
}

func (s *TopicScreen) KeyHints() []layout.KeyHint {
	if s.quitAsked {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave topic"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.snap.Phase {
	case sess.PhaseLearning:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Done, next"},
			{Key: "←→", Description: "Browse"},
		}
		if item, ok := s.snap.CurrentItem(); ok && item.Kind == topic.ContentVideo {
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Play/Pause"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
		return hints
	case sess.PhaseQuiz:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Skip around"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return nil
	}
}

func (s *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case playTickMsg:
		return s.handlePlayTick()

	case completionSavedMsg:
		return s.handleCompletionSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Text inputs also react to non-key messages (cursor blink).
	if s.snap.Phase == sess.PhaseQuiz {
		if q, ok := s.snap.CurrentQuestion(); ok && q.Type == topic.QuestionText {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// recordStart persists the session start event off the UI loop.
func (s *TopicScreen) recordStart() tea.Cmd {
	snap := s.snap
	svc := s.rewardsSvc
	return func() tea.Msg {
		err := svc.RecordSessionStart(context.Background(), snap.SessionID, snap.LearnerID, snap.TopicID)
		return sessionStartedMsg{Err: err}
	}
}

// handlePlayTick advances video watch time once per second while playing.
func (s *TopicScreen) handlePlayTick() (screen.Screen, tea.Cmd) {
	if s.snap.Phase != sess.PhaseLearning {
		return s, nil
	}

	item, ok := s.snap.CurrentItem()
	if ok && item.Kind == topic.ContentVideo && !s.paused && !s.snap.Completed[item.ID] {
		watched := s.snap.WatchSeconds[item.ID] + 1
		if snap, err := s.eng.RecordVideoProgress(item.ID, watched); err == nil {
			s.snap = snap
		}
	}
	return s, playTick()
}

func (s *TopicScreen) handleCompletionSaved(msg completionSavedMsg) (screen.Screen, tea.Cmd) {
	s.saving = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	sum := summary.New(msg.Record, msg.Award, s.snap.Questions, s.snap.Answers)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func (s *TopicScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.saving {
		return s, nil
	}

	if s.quitAsked {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitAsked = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitAsked = true
		return s, nil
	}

	switch s.snap.Phase {
	case sess.PhaseLearning:
		return s.handleLearningKey(msg)
	case sess.PhaseQuiz:
		return s.handleQuizKey(msg)
	}
	return s, nil
}

func (s *TopicScreen) handleLearningKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	s.gateMsg = ""

	item, hasItem := s.snap.CurrentItem()

	switch key {
	case "left", "h":
		s.snap = s.eng.Retreat()
		s.paused = false
		s.syncPractice()
		return s, nil

	case "right", "l":
		if snap, err := s.eng.NavigateTo(s.snap.ContentIndex + 1); err == nil {
			s.snap = snap
			s.paused = false
			s.syncPractice()
		}
		return s, nil

	case " ":
		if hasItem && item.Kind == topic.ContentVideo {
			s.paused = !s.paused
			return s, nil
		}

	case "enter":
		if !hasItem {
			return s, nil
		}
		// Practice question: first enter reveals the preview verdict,
		// the second one moves on.
		if item.Kind == topic.ContentQuiz && !s.practiceChecked && s.practiceAnswered(item) {
			s.checkPractice(item)
			return s, nil
		}
		return s.markComplete(item)
	}

	// Practice question interaction.
	if hasItem && item.Kind == topic.ContentQuiz && !s.practiceChecked {
		s.updatePracticeInput(msg, item)
	}
	return s, nil
}

func (s *TopicScreen) markComplete(item topic.ContentItem) (screen.Screen, tea.Cmd) {
	snap, err := s.eng.MarkItemComplete(item.ID)
	if err != nil {
		if errors.Is(err, sess.ErrGateNotSatisfied) {
			s.gateMsg = "Watch a bit more of the video before moving on."
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.snap = snap
	s.paused = false
	if s.snap.Phase == sess.PhaseQuiz {
		s.syncQuizInputs()
	} else {
		s.syncPractice()
	}
	return s, nil
}

func (s *TopicScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	q, ok := s.snap.CurrentQuestion()
	if !ok {
		// Empty quiz: a single enter completes the session.
		if key == "enter" {
			return s.advance()
		}
		return s, nil
	}

	switch key {
	case "tab":
		s.storeCurrentAnswer(q)
		if snap, err := s.eng.NavigateTo(s.snap.QuestionIndex + 1); err == nil {
			s.snap = snap
			s.syncQuizInputs()
		}
		return s, nil
	case "shift+tab":
		s.storeCurrentAnswer(q)
		if snap, err := s.eng.NavigateTo(s.snap.QuestionIndex - 1); err == nil {
			s.snap = snap
			s.syncQuizInputs()
		}
		return s, nil
	case "enter":
		s.storeCurrentAnswer(q)
		return s.advance()
	}

	// Forward keys to the question's input component.
	switch q.Type {
	case topic.QuestionSingle:
		s.choice, _ = s.choice.Update(msg)
	case topic.QuestionMultiple:
		s.checks, _ = s.checks.Update(msg)
	case topic.QuestionText:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// storeCurrentAnswer records whatever the current component holds. Empty
// input leaves the question unanswered.
func (s *TopicScreen) storeCurrentAnswer(q topic.Question) {
	var answer *grading.Answer
	switch q.Type {
	case topic.QuestionSingle:
		if s.choice.Chosen >= 0 {
			answer = grading.SelectionAnswer(s.choice.Chosen)
		}
	case topic.QuestionMultiple:
		if checked := s.checks.Checked(); len(checked) > 0 {
			answer = grading.SelectionAnswer(checked...)
		}
	case topic.QuestionText:
		if v := s.input.Value(); v != "" {
			answer = grading.TextAnswer(v)
		}
	}
	if answer == nil {
		return
	}
	if snap, err := s.eng.RecordAnswer(s.snap.QuestionIndex, answer); err == nil {
		s.snap = snap
	}
}

// advance moves to the next question, or completes the session from the
// last one and kicks off persistence.
func (s *TopicScreen) advance() (screen.Screen, tea.Cmd) {
	snap, err := s.eng.AdvanceQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.snap = snap

	if s.snap.Phase == sess.PhaseCompleted {
		s.saving = true
		return s, s.saveCompletion()
	}

	s.syncQuizInputs()
	return s, nil
}

// saveCompletion writes the session outcome to the event log off the UI loop.
func (s *TopicScreen) saveCompletion() tea.Cmd {
	eng := s.eng
	svc := s.rewardsSvc
	questions := s.snap.Questions
	return func() tea.Msg {
		rec, err := eng.CompletionRecord()
		if err != nil {
			return completionSavedMsg{Err: err}
		}
		award, err := svc.RecordCompletion(context.Background(), rec, questions)
		if err != nil {
			return completionSavedMsg{Err: err}
		}
		return completionSavedMsg{Record: rec, Award: award}
	}
}

// syncQuizInputs rebuilds the input component for the current question,
// restoring any previously recorded answer.
func (s *TopicScreen) syncQuizInputs() {
	q, ok := s.snap.CurrentQuestion()
	if !ok {
		return
	}
	idx := s.snap.QuestionIndex
	recorded := s.snap.Answers[idx]

	switch q.Type {
	case topic.QuestionSingle:
		s.choice = components.NewChoiceList(q.Options)
		if recorded != nil && len(recorded.Indices) == 1 {
			s.choice.Select(recorded.Indices[0])
		}
	case topic.QuestionMultiple:
		s.checks = components.NewCheckList(q.Options)
		if recorded != nil {
			s.checks.SetChecked(recorded.Indices)
		}
	case topic.QuestionText:
		s.input = components.NewTextInput("Type your answer...", 80)
		if recorded != nil {
			s.input.SetValue(recorded.Text)
		}
	}
}

// syncPractice resets the practice components when the current learning
// item is a quiz-as-content question.
func (s *TopicScreen) syncPractice() {
	item, ok := s.snap.CurrentItem()
	if !ok || item.Kind != topic.ContentQuiz || item.Quiz == nil {
		s.practiceItemID = ""
		return
	}
	if s.practiceItemID == item.ID {
		return
	}
	s.practiceItemID = item.ID
	s.practiceChecked = false
	s.practiceCorrect = false
	q := item.Quiz.Question
	if q.Type == topic.QuestionText {
		s.practiceInput = components.NewTextInput("Try an answer...", 80)
	} else {
		s.practice = components.NewChoiceList(q.Options)
	}
}

func (s *TopicScreen) updatePracticeInput(msg tea.KeyMsg, item topic.ContentItem) {
	q := item.Quiz.Question
	if q.Type == topic.QuestionText {
		s.practiceInput, _ = s.practiceInput.Update(msg)
	} else {
		s.practice, _ = s.practice.Update(msg)
	}
}

// practiceAnswered reports whether the learner has entered something worth
// checking.
func (s *TopicScreen) practiceAnswered(item topic.ContentItem) bool {
	q := item.Quiz.Question
	if q.Type == topic.QuestionText {
		return s.practiceInput.Value() != ""
	}
	return s.practice.Chosen >= 0
}

// checkPractice grades the practice attempt locally. The verdict is a
// preview; the real quiz is graded at session completion.
func (s *TopicScreen) checkPractice(item topic.ContentItem) {
	q := item.Quiz.Question
	var answer *grading.Answer
	if q.Type == topic.QuestionText {
		answer = grading.TextAnswer(s.practiceInput.Value())
	} else {
		answer = grading.SelectionAnswer(s.practice.Chosen)
	}
	s.practiceChecked = true
	s.practiceCorrect = grading.IsCorrect(q, answer)
	s.practiceInput.Submit(s.practiceCorrect)
}

// playTick returns a 1-second tick command for video playback.
func playTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}
