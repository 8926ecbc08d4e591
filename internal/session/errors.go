package session

import (
	"errors"
	"fmt"
)

// Sentinel errors for the session state machine. Every operation validates
// before it mutates, so any of these leaving an operation means the session
// is unchanged.
var (
	// ErrGateNotSatisfied means a completion request was refused by the
	// item's completion gate (e.g. not enough of the video watched).
	// Recoverable: the caller should tell the learner why.
	ErrGateNotSatisfied = errors.New("completion gate not satisfied")

	// ErrOutOfRange means a navigation index was outside the bounds of
	// the current phase. Caller bug.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidPhase means an operation was invoked in a phase that does
	// not support it (e.g. recording an answer while still learning).
	// Caller bug.
	ErrInvalidPhase = errors.New("operation not valid in current phase")

	// ErrUnknownItem means a content item identifier is not part of this
	// session's topic.
	ErrUnknownItem = errors.New("unknown content item")

	// ErrNotVideo means watch progress was reported for a non-video item.
	ErrNotVideo = errors.New("content item is not a video")
)

// InvalidTopicDataError is returned when a fetched topic is malformed and
// no session can be constructed from it. Fatal: the construction fails and
// no partially initialized session is reachable.
type InvalidTopicDataError struct {
	Reason string
}

func (e *InvalidTopicDataError) Error() string {
	return fmt.Sprintf("invalid topic data: %s", e.Reason)
}
