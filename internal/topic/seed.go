package topic

import (
	"embed"
	"fmt"
)

// Built-in topics shipped with the binary so a fresh install has something
// to learn from before the user points TUTE_TOPICS at their own files.
//
//go:embed topics/*.json
var seedFS embed.FS

// loadSeed parses the embedded topic files.
func loadSeed() ([]Topic, error) {
	entries, err := seedFS.ReadDir("topics")
	if err != nil {
		return nil, err
	}

	var topics []Topic
	for _, e := range entries {
		raw, err := seedFS.ReadFile("topics/" + e.Name())
		if err != nil {
			return nil, err
		}
		t, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		topics = append(topics, t)
	}
	return topics, nil
}
