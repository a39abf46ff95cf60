package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemProgress is the mutable scheduling state of one learnable item for
// one learner. It is written only by the review dispatcher and never
// deleted by the scheduling core.
type ItemProgress struct {
	ent.Schema
}

func (ItemProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Comment("vocabulary, grammar, or error"),
		field.String("scheduler").
			NotEmpty().
			Immutable().
			Comment("adaptive or steps; fixed for the item's lifetime"),
		field.String("term").
			NotEmpty(),
		field.String("translation").
			Optional(),
		field.Float("stability").
			Default(0).
			Comment("Adaptive scheduler's memory durability estimate"),
		field.Float("difficulty").
			Default(0).
			Comment("Adaptive scheduler's intrinsic difficulty, 1-10"),
		field.Float("ease").
			Default(0).
			Comment("Step scheduler's ease factor, 1.3-2.5"),
		field.Int("repetitions").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.Int("interval_days").
			Default(0).
			Comment("Interval chosen at the most recent review"),
		field.String("state").
			Default("new").
			Comment("Lifecycle label of the owning scheduler"),
		field.Int("step_index").
			Default(0).
			Comment("Position in the learning/relearning step table"),
		field.Time("due_at").
			Optional().
			Nillable().
			Comment("Absent until the first review"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ItemProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id").Unique(),
		index.Fields("learner_id", "kind"),
		index.Fields("due_at"),
	}
}
