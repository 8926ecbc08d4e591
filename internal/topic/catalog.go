package topic

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrNotFound is returned when a topic identifier is not in the catalog.
var ErrNotFound = fmt.Errorf("topic not found")

// Catalog holds the loaded, validated topics, indexed by identifier.
type Catalog struct {
	topics []Topic
	byID   map[string]*Topic
}

// Load builds a catalog from the embedded seed topics plus any *.json
// files found in dir (empty dir means seed only). A file that fails
// validation rejects the whole load: no partially decoded topic is ever
// reachable from the catalog.
func Load(dir string) (*Catalog, error) {
	topics, err := loadSeed()
	if err != nil {
		return nil, fmt.Errorf("load seed topics: %w", err)
	}

	if dir != "" {
		external, err := loadDir(dir)
		if err != nil {
			return nil, err
		}
		topics = append(topics, external...)
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].Title < topics[j].Title })

	c := &Catalog{
		topics: topics,
		byID:   make(map[string]*Topic, len(topics)),
	}
	for i := range c.topics {
		t := &c.topics[i]
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate topic id %q", t.ID)
		}
		c.byID[t.ID] = t
	}
	return c, nil
}

// Topics returns all topics in display order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Get returns the topic with the given identifier.
func (c *Catalog) Get(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return *t, nil
}

// Len returns the number of topics in the catalog.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// loadDir parses every *.json file in dir as a topic file.
func loadDir(dir string) ([]Topic, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read topics dir: %w", err)
	}

	var topics []Topic
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		t, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// topicFile is the full wire form of a topic file, version header included.
type topicFile struct {
	SchemaVersion string `json:"schemaVersion"`
	Topic
}

// Parse validates and decodes a single topic file.
func Parse(raw []byte) (Topic, error) {
	if err := validateTopicJSON(raw); err != nil {
		return Topic{}, err
	}

	var file topicFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Topic{}, fmt.Errorf("decode topic: %w", err)
	}

	if err := checkSchemaVersion(file.SchemaVersion); err != nil {
		return Topic{}, err
	}

	t := file.Topic
	normalize(&t)
	return t, nil
}

// checkSchemaVersion accepts any file in the same major series as
// SchemaVersion.
func checkSchemaVersion(v string) error {
	got := "v" + v
	if !semver.IsValid(got) {
		return fmt.Errorf("invalid schemaVersion %q", v)
	}
	if semver.Major(got) != semver.Major("v"+SchemaVersion) {
		return fmt.Errorf("unsupported schemaVersion %q (this build reads %s)",
			v, semver.Major("v"+SchemaVersion))
	}
	return nil
}

// normalize applies defaults the wire format leaves optional.
func normalize(t *Topic) {
	for i := range t.QuizQuestions {
		if t.QuizQuestions[i].Points == 0 {
			t.QuizQuestions[i].Points = DefaultQuestionPoints
		}
	}
	for i := range t.LearningContent {
		item := &t.LearningContent[i]
		if item.Kind == ContentQuiz && item.Quiz != nil && item.Quiz.Question.Points == 0 {
			item.Quiz.Question.Points = DefaultQuestionPoints
		}
	}
}
