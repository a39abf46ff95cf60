package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImportEvent records one deck import for audit: where the deck came
// from and how many items were created versus skipped as duplicates.
type ImportEvent struct {
	ent.Schema
}

func (ImportEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ImportEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("deck_name").
			NotEmpty().
			Immutable(),
		field.String("source_file").
			Optional().
			Immutable(),
		field.Int("imported_count").Immutable(),
		field.Int("skipped_count").Immutable(),
	}
}

func (ImportEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
