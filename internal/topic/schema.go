package topic

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaVersion is the topic file format version this build writes and the
// major series it accepts.
const SchemaVersion = "1.1.0"

// topicSchema is the JSON Schema every topic file must satisfy before it
// is decoded. It enforces the §shape contract at the input boundary:
// learningContent and quizQuestions must be present and must be arrays.
var topicSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"schemaVersion": map[string]any{"type": "string"},
		"id":            map[string]any{"type": "string", "minLength": 1},
		"title":         map[string]any{"type": "string", "minLength": 1},
		"description":   map[string]any{"type": "string"},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"estimatedTime": map[string]any{"type": "integer", "minimum": 0},
		"learningContent": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/contentItem"},
		},
		"quizQuestions": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/question"},
		},
	},
	"required": []any{
		"schemaVersion", "id", "title", "difficulty",
		"learningContent", "quizQuestions",
	},
	"$defs": map[string]any{
		"contentItem": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"text", "video", "quiz"},
				},
				"title":       map[string]any{"type": "string"},
				"body":        map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"videoRef":    map[string]any{"type": "string"},
				"duration":    map[string]any{"type": "integer", "minimum": 0},
				"question":    map[string]any{"$ref": "#/$defs/question"},
			},
			"required": []any{"id", "type"},
			"allOf": []any{
				map[string]any{
					"if": map[string]any{
						"properties": map[string]any{
							"type": map[string]any{"const": "text"},
						},
					},
					"then": map[string]any{"required": []any{"body"}},
				},
				map[string]any{
					"if": map[string]any{
						"properties": map[string]any{
							"type": map[string]any{"const": "video"},
						},
					},
					"then": map[string]any{"required": []any{"title", "videoRef", "duration"}},
				},
				map[string]any{
					"if": map[string]any{
						"properties": map[string]any{
							"type": map[string]any{"const": "quiz"},
						},
					},
					"then": map[string]any{"required": []any{"question"}},
				},
			},
		},
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":     map[string]any{"type": "string", "minLength": 1},
				"prompt": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"single", "multiple", "text"},
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"correctIndices": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer", "minimum": 0},
				},
				"correctText": map[string]any{"type": "string"},
				"explanation": map[string]any{"type": "string"},
				"points":      map[string]any{"type": "integer", "minimum": 0},
				"difficulty":  map[string]any{"type": "string"},
			},
			"required": []any{"id", "prompt", "type"},
		},
	},
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// validateTopicJSON checks raw topic JSON against the topic schema.
func validateTopicJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiled returns the compiled topic schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the
		// definition through encoding/json.
		defBytes, err := json.Marshal(topicSchema)
		if err != nil {
			compileSchemaError = fmt.Errorf("marshal topic schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaError = fmt.Errorf("parse topic schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://topic.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile(url)
	})
	return compiledSchema, compileSchemaError
}
