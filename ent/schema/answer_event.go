package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded quiz answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question within the topic"),
		field.Int("question_index").
			Comment("Position of the question in the quiz"),
		field.String("question_type").
			NotEmpty().
			Comment("single, multiple, or text"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("learner_answer").
			Comment("Display form of the learner's answer, empty if unanswered"),
		field.String("correct_answer").
			NotEmpty().
			Comment("Display form of the canonical answer"),
		field.Bool("correct").
			Comment("Verdict from deferred grading"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
