package session

import (
	"testing"

	"github.com/tutelearn/tute/internal/topic"
)

func TestCanComplete(t *testing.T) {
	video := topic.ContentItem{
		ID:   "v1",
		Kind: topic.ContentVideo,
		Video: &topic.VideoContent{
			Title: "Intro", VideoRef: "vid-1", Duration: 100,
		},
	}

	tests := []struct {
		name  string
		item  topic.ContentItem
		watch int
		want  bool
	}{
		{"text always", topic.ContentItem{ID: "t1", Kind: topic.ContentText}, 0, true},
		{"quiz always", topic.ContentItem{ID: "q1", Kind: topic.ContentQuiz}, 0, true},
		{"video unwatched", video, 0, false},
		{"video below threshold", video, 79, false},
		{"video at threshold", video, 80, true},
		{"video over duration", video, 150, true},
		{"unknown kind", topic.ContentItem{ID: "x", Kind: "hologram"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanComplete(tt.item, tt.watch); got != tt.want {
				t.Errorf("CanComplete(%s, %d) = %v, want %v", tt.item.ID, tt.watch, got, tt.want)
			}
		})
	}
}

func TestCanComplete_ZeroDurationVideo(t *testing.T) {
	item := topic.ContentItem{
		ID:    "v0",
		Kind:  topic.ContentVideo,
		Video: &topic.VideoContent{Title: "Broken", VideoRef: "vid-0", Duration: 0},
	}
	if !CanComplete(item, 0) {
		t.Error("a zero-duration video must not lock the learner out")
	}
}
