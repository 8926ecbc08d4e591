package topic

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTopicJSON = `{
  "schemaVersion": "1.1.0",
  "id": "test-topic",
  "title": "Test Topic",
  "difficulty": "beginner",
  "estimatedTime": 5,
  "learningContent": [
    {"id": "c1", "type": "text", "title": "Intro", "body": "Read this."},
    {"id": "c2", "type": "video", "title": "Watch", "videoRef": "vid_1", "duration": 120},
    {"id": "c3", "type": "quiz", "question": {
      "id": "p1", "prompt": "Practice?", "type": "single",
      "options": ["a", "b"], "correctIndices": [0]
    }}
  ],
  "quizQuestions": [
    {"id": "q1", "prompt": "Pick one", "type": "single",
     "options": ["x", "y"], "correctIndices": [1]},
    {"id": "q2", "prompt": "Fill in", "type": "text", "correctText": "answer", "points": 25}
  ]
}`

func TestParse(t *testing.T) {
	got, err := Parse([]byte(validTopicJSON))
	require.NoError(t, err)

	assert.Equal(t, "test-topic", got.ID)
	assert.Equal(t, DifficultyBeginner, got.Difficulty)
	require.Len(t, got.LearningContent, 3)
	require.Len(t, got.QuizQuestions, 2)

	assert.Equal(t, ContentText, got.LearningContent[0].Kind)
	require.NotNil(t, got.LearningContent[0].Text)
	assert.Equal(t, "Read this.", got.LearningContent[0].Text.Body)

	assert.Equal(t, ContentVideo, got.LearningContent[1].Kind)
	require.NotNil(t, got.LearningContent[1].Video)
	assert.Equal(t, 120, got.LearningContent[1].Video.Duration)

	assert.Equal(t, ContentQuiz, got.LearningContent[2].Kind)
	require.NotNil(t, got.LearningContent[2].Quiz)

	// Default points applied where the file leaves them out.
	assert.Equal(t, DefaultQuestionPoints, got.QuizQuestions[0].Points)
	assert.Equal(t, 25, got.QuizQuestions[1].Points)
	assert.Equal(t, DefaultQuestionPoints, got.LearningContent[2].Quiz.Question.Points)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"id": `},
		{"missing title", `{"schemaVersion": "1.1.0", "id": "t", "difficulty": "beginner", "learningContent": [], "quizQuestions": []}`},
		{"missing learningContent", `{"schemaVersion": "1.1.0", "id": "t", "title": "T", "difficulty": "beginner", "quizQuestions": []}`},
		{"missing quizQuestions", `{"schemaVersion": "1.1.0", "id": "t", "title": "T", "difficulty": "beginner", "learningContent": []}`},
		{"bad difficulty", `{"schemaVersion": "1.1.0", "id": "t", "title": "T", "difficulty": "impossible", "learningContent": [], "quizQuestions": []}`},
		{"unknown content type", `{"schemaVersion": "1.1.0", "id": "t", "title": "T", "difficulty": "beginner",
			"learningContent": [{"id": "c1", "type": "podcast"}], "quizQuestions": []}`},
		{"video without duration", `{"schemaVersion": "1.1.0", "id": "t", "title": "T", "difficulty": "beginner",
			"learningContent": [{"id": "c1", "type": "video", "title": "V", "videoRef": "vid"}], "quizQuestions": []}`},
		{"quiz content without question", `{"schemaVersion": "1.1.0", "id": "t", "title": "T", "difficulty": "beginner",
			"learningContent": [{"id": "c1", "type": "quiz"}], "quizQuestions": []}`},
		{"no schemaVersion", `{"id": "t", "title": "T", "difficulty": "beginner", "learningContent": [], "quizQuestions": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseEmptyListsAllowed(t *testing.T) {
	raw := `{"schemaVersion": "1.1.0", "id": "bare", "title": "Bare", "difficulty": "beginner",
		"learningContent": [], "quizQuestions": []}`
	got, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Empty(t, got.LearningContent)
	assert.Empty(t, got.QuizQuestions)
}

func TestCheckSchemaVersion(t *testing.T) {
	t.Run("same major accepted", func(t *testing.T) {
		assert.NoError(t, checkSchemaVersion("1.0.0"))
		assert.NoError(t, checkSchemaVersion("1.9.3"))
	})
	t.Run("other major rejected", func(t *testing.T) {
		assert.Error(t, checkSchemaVersion("2.0.0"))
		assert.Error(t, checkSchemaVersion("0.9.0"))
	})
	t.Run("garbage rejected", func(t *testing.T) {
		assert.Error(t, checkSchemaVersion("latest"))
		assert.Error(t, checkSchemaVersion(""))
	})
}

func TestLoadSeedOnly(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Greater(t, c.Len(), 0)

	for _, topic := range c.Topics() {
		got, err := c.Get(topic.ID)
		require.NoError(t, err)
		assert.Equal(t, topic.Title, got.Title)
	}
}

func TestLoadExternalDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.json"), []byte(validTopicJSON), 0o644))

	c, err := Load(dir)
	require.NoError(t, err)

	got, err := c.Get("test-topic")
	require.NoError(t, err)
	assert.Equal(t, "Test Topic", got.Title)
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"id": "oops"}`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoadRejectsDuplicateID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(validTopicJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(validTopicJSON), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestGetUnknown(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	_, err = c.Get("no-such-topic")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentItemRoundTrip(t *testing.T) {
	parsed, err := Parse([]byte(validTopicJSON))
	require.NoError(t, err)

	for _, item := range parsed.LearningContent {
		t.Run(fmt.Sprintf("%s %s", item.Kind, item.ID), func(t *testing.T) {
			data, err := item.MarshalJSON()
			require.NoError(t, err)

			var back ContentItem
			require.NoError(t, back.UnmarshalJSON(data))
			assert.Equal(t, item, back)
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		item ContentItem
		want string
	}{
		{"text with title", ContentItem{Kind: ContentText, Text: &TextContent{Title: "Intro"}}, "Intro"},
		{"text without title", ContentItem{Kind: ContentText, Text: &TextContent{Body: "b"}}, "Reading"},
		{"video", ContentItem{Kind: ContentVideo, Video: &VideoContent{Title: "Watch me"}}, "Watch me"},
		{"quiz", ContentItem{Kind: ContentQuiz, Quiz: &QuizContent{}}, "Practice question"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.DisplayTitle())
		})
	}
}
