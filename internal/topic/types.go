package topic

import (
	"encoding/json"
	"fmt"
)

// DefaultQuestionPoints is the point value assigned to questions that do
// not declare one in the topic file.
const DefaultQuestionPoints = 10

// Difficulty is the coarse difficulty tier of a topic.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DisplayName returns a human-readable label for the difficulty tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// ContentKind discriminates the content item variants.
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentVideo ContentKind = "video"
	ContentQuiz  ContentKind = "quiz"
)

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
	QuestionText     QuestionType = "text"
)

// Topic is one learning unit: ordered instructional content followed by a
// set of assessment questions. Immutable once loaded from the catalog.
type Topic struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Difficulty      Difficulty    `json:"difficulty"`
	EstimatedTime   int           `json:"estimatedTime"` // minutes
	LearningContent []ContentItem `json:"learningContent"`
	QuizQuestions   []Question    `json:"quizQuestions"`
}

// ContentItem is a tagged union over the three content variants. Exactly
// one of Text, Video, Quiz is non-nil, matching Kind.
type ContentItem struct {
	ID    string
	Kind  ContentKind
	Text  *TextContent
	Video *VideoContent
	Quiz  *QuizContent
}

// TextContent is a block of HTML-safe instructional text.
type TextContent struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// VideoContent references an externally hosted video.
type VideoContent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	VideoRef    string `json:"videoRef"`
	Duration    int    `json:"duration"` // seconds
}

// QuizContent embeds a practice question used as learning content.
// It is never graded; only assessment questions count toward the score.
type QuizContent struct {
	Question Question `json:"question"`
}

// Question is one assessment item.
type Question struct {
	ID             string       `json:"id"`
	Prompt         string       `json:"prompt"`
	Type           QuestionType `json:"type"`
	Options        []string     `json:"options,omitempty"`
	CorrectIndices []int        `json:"correctIndices,omitempty"`
	CorrectText    string       `json:"correctText,omitempty"`
	Explanation    string       `json:"explanation,omitempty"`
	Points         int          `json:"points,omitempty"`
	Difficulty     string       `json:"difficulty,omitempty"`
}

// contentItemJSON is the wire form of a content item: variant fields are
// flattened alongside the "type" discriminator.
type contentItemJSON struct {
	ID   string      `json:"id"`
	Type ContentKind `json:"type"`

	// text
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`

	// video
	Description string `json:"description,omitempty"`
	VideoRef    string `json:"videoRef,omitempty"`
	Duration    int    `json:"duration,omitempty"`

	// quiz
	Question *Question `json:"question,omitempty"`
}

// UnmarshalJSON decodes the flattened wire form into the tagged union.
func (c *ContentItem) UnmarshalJSON(data []byte) error {
	var raw contentItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	item := ContentItem{ID: raw.ID, Kind: raw.Type}
	switch raw.Type {
	case ContentText:
		item.Text = &TextContent{Title: raw.Title, Body: raw.Body}
	case ContentVideo:
		item.Video = &VideoContent{
			Title:       raw.Title,
			Description: raw.Description,
			VideoRef:    raw.VideoRef,
			Duration:    raw.Duration,
		}
	case ContentQuiz:
		if raw.Question == nil {
			return fmt.Errorf("quiz content %q: missing question", raw.ID)
		}
		item.Quiz = &QuizContent{Question: *raw.Question}
	default:
		return fmt.Errorf("content item %q: unknown type %q", raw.ID, raw.Type)
	}

	*c = item
	return nil
}

// MarshalJSON encodes the tagged union back into the flattened wire form.
func (c ContentItem) MarshalJSON() ([]byte, error) {
	raw := contentItemJSON{ID: c.ID, Type: c.Kind}
	switch c.Kind {
	case ContentText:
		if c.Text != nil {
			raw.Title = c.Text.Title
			raw.Body = c.Text.Body
		}
	case ContentVideo:
		if c.Video != nil {
			raw.Title = c.Video.Title
			raw.Description = c.Video.Description
			raw.VideoRef = c.Video.VideoRef
			raw.Duration = c.Video.Duration
		}
	case ContentQuiz:
		if c.Quiz != nil {
			q := c.Quiz.Question
			raw.Question = &q
		}
	default:
		return nil, fmt.Errorf("content item %q: unknown kind %q", c.ID, c.Kind)
	}
	return json.Marshal(raw)
}

// DisplayTitle returns the best available title for the item.
func (c ContentItem) DisplayTitle() string {
	switch c.Kind {
	case ContentText:
		if c.Text != nil && c.Text.Title != "" {
			return c.Text.Title
		}
		return "Reading"
	case ContentVideo:
		if c.Video != nil {
			return c.Video.Title
		}
		return "Video"
	case ContentQuiz:
		return "Practice question"
	default:
		return string(c.Kind)
	}
}
