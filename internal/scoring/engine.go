package scoring

import (
	"math"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/topic"
)

// Reward point constants. These are the platform-wide values a completed
// session credits; they are deliberately not configurable per topic.
const (
	// BaseCompletionPoints is credited for finishing a session at all.
	BaseCompletionPoints = 30

	// PointsPerCorrect is credited for each correctly answered question.
	PointsPerCorrect = 10

	// PointsPerVideo is credited for each video the learner watched at
	// all. Any nonzero watch time counts; the 80% completion gate is a
	// separate concern.
	PointsPerVideo = 5

	// PassPercentage is the minimum rounded percentage considered a pass.
	PassPercentage = 60
)

// Result is the outcome of grading a completed session.
type Result struct {
	// Score is the number of correctly answered questions.
	Score int

	// TotalQuestions is the number of assessment questions in the topic.
	TotalQuestions int

	// Correct records per-question grading, parallel to the questions.
	Correct []bool

	// TutePointsEarned is the total reward credit for the session.
	TutePointsEarned int

	// VideoBonusCount is the number of videos with any recorded watch time.
	VideoBonusCount int

	// Percentage is Score/TotalQuestions rounded to the nearest percent.
	// A topic with zero questions is trivially 100%.
	Percentage int

	// Passed is true when Percentage meets PassPercentage.
	Passed bool
}

// BasePoints returns the completion portion of the total.
func (r Result) BasePoints() int {
	return BaseCompletionPoints
}

// CorrectPoints returns the correctness portion of the total.
func (r Result) CorrectPoints() int {
	return r.Score * PointsPerCorrect
}

// VideoPoints returns the video-bonus portion of the total.
func (r Result) VideoPoints() int {
	return r.VideoBonusCount * PointsPerVideo
}

// Finalize grades a finished session. Answers is parallel to questions;
// nil slots are unanswered and grade as incorrect. watchSeconds maps video
// content item IDs to the maximum observed watch time.
//
// Finalize is pure: it is invoked exactly once, on the quiz→completed
// edge, and the session stores its output immutably.
func Finalize(questions []topic.Question, answers []*grading.Answer, items []topic.ContentItem, watchSeconds map[string]int) Result {
	r := Result{
		TotalQuestions: len(questions),
		Correct:        make([]bool, len(questions)),
	}

	for i, q := range questions {
		var a *grading.Answer
		if i < len(answers) {
			a = answers[i]
		}
		if grading.IsCorrect(q, a) {
			r.Correct[i] = true
			r.Score++
		}
	}

	for _, item := range items {
		if item.Kind == topic.ContentVideo && watchSeconds[item.ID] > 0 {
			r.VideoBonusCount++
		}
	}

	r.TutePointsEarned = BaseCompletionPoints +
		r.Score*PointsPerCorrect +
		r.VideoBonusCount*PointsPerVideo

	if r.TotalQuestions == 0 {
		r.Percentage = 100
	} else {
		r.Percentage = int(math.Round(float64(r.Score) / float64(r.TotalQuestions) * 100))
	}
	r.Passed = r.Percentage >= PassPercentage

	return r
}
