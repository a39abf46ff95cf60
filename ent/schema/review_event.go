package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent is the append-only history of one processed review:
// the rating, the scheduler used, and the before/after scheduling
// values. Rows are never updated or deleted by the scheduling core.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Immutable(),
		field.String("scheduler").
			NotEmpty().
			Immutable().
			Comment("Which algorithm produced this transition"),
		field.Int("rating").
			Immutable().
			Comment("0=again, 1=hard, 2=good, 3=easy"),
		field.String("transition").
			NotEmpty().
			Immutable().
			Comment("Before/after lifecycle label, e.g. new→learning"),
		field.Int("prev_interval_days").Immutable(),
		field.Int("new_interval_days").Immutable(),
		field.Float("prev_ease").Immutable(),
		field.Float("new_ease").Immutable(),
		field.Float("prev_stability").Immutable(),
		field.Float("new_stability").Immutable(),
		field.Float("prev_difficulty").Immutable(),
		field.Float("new_difficulty").Immutable(),
		field.Int("latency_ms").
			Optional().
			Immutable().
			Comment("Learner response time, when the client reports it"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id"),
	}
}
