package session

import "github.com/tutelearn/tute/internal/topic"

// MinimumWatchFraction is the share of a video's duration a learner must
// watch before the item can be marked complete.
const MinimumWatchFraction = 0.80

// CanComplete is the completion gate: it decides whether a content item may
// be marked complete given the recorded watch time. Pure predicate, no side
// effects.
//
//   - text: always completable.
//   - video: completable once watchSeconds/duration reaches
//     MinimumWatchFraction. A zero duration is always completable, since
//     authored data sometimes carries duration 0 and must not lock the
//     learner out.
//   - quiz-as-content: always completable. Practice questions are not
//     graded; only assessment questions count.
func CanComplete(item topic.ContentItem, watchSeconds int) bool {
	switch item.Kind {
	case topic.ContentText:
		return true
	case topic.ContentVideo:
		if item.Video == nil || item.Video.Duration == 0 {
			return true
		}
		return float64(watchSeconds)/float64(item.Video.Duration) >= MinimumWatchFraction
	case topic.ContentQuiz:
		return true
	default:
		return false
	}
}
