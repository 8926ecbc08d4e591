package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records learning session lifecycle events (start/complete).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner who ran the session"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the session covered"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("score").
			Default(0).
			Comment("Correct answers (on complete only)"),
		field.Int("total_questions").
			Default(0).
			Comment("Quiz size (on complete only)"),
		field.Int("percentage").
			Default(0).
			Comment("Rounded score percentage (on complete only)"),
		field.Bool("passed").
			Default(false).
			Comment("Whether percentage reached the pass mark"),
		field.Int("tute_points").
			Default(0).
			Comment("TUTE points earned (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
		index.Fields("action"),
	}
}
