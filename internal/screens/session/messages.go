package session

import (
	"time"

	"github.com/tutelearn/tute/internal/rewards"
	sess "github.com/tutelearn/tute/internal/session"
)

// sessionStartedMsg is sent once the start event has been persisted.
type sessionStartedMsg struct {
	Err error
}

// playTickMsg is sent every second while a video is playing.
type playTickMsg time.Time

// completionSavedMsg is sent when the finished session has been written to
// the event log.
type completionSavedMsg struct {
	Record sess.CompletionRecord
	Award  *rewards.Award
	Err    error
}
