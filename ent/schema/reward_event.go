package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records a TUTE point credit. The balance is the sum of all
// reward events; there are no debits.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Positive().
			Comment("TUTE points credited"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable cause, e.g. topic_completed"),
		field.String("session_id").
			NotEmpty().
			Comment("Session that produced the credit"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic that produced the credit"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
	}
}
