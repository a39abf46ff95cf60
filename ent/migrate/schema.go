// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportEventsColumns holds the columns for the "import_events" table.
	ImportEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "deck_name", Type: field.TypeString},
		{Name: "source_file", Type: field.TypeString, Nullable: true},
		{Name: "imported_count", Type: field.TypeInt},
		{Name: "skipped_count", Type: field.TypeInt},
	}
	// ImportEventsTable holds the schema information for the "import_events" table.
	ImportEventsTable = &schema.Table{
		Name:       "import_events",
		Columns:    ImportEventsColumns,
		PrimaryKey: []*schema.Column{ImportEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ImportEventsColumns[1]},
			},
			{
				Name:    "importevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ImportEventsColumns[2]},
			},
			{
				Name:    "importevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ImportEventsColumns[4]},
			},
		},
	}
	// ItemProgressesColumns holds the columns for the "item_progresses" table.
	ItemProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "scheduler", Type: field.TypeString},
		{Name: "term", Type: field.TypeString},
		{Name: "translation", Type: field.TypeString, Nullable: true},
		{Name: "stability", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "ease", Type: field.TypeFloat64, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeString, Default: "new"},
		{Name: "step_index", Type: field.TypeInt, Default: 0},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemProgressesTable holds the schema information for the "item_progresses" table.
	ItemProgressesTable = &schema.Table{
		Name:       "item_progresses",
		Columns:    ItemProgressesColumns,
		PrimaryKey: []*schema.Column{ItemProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemprogress_learner_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{ItemProgressesColumns[2], ItemProgressesColumns[1]},
			},
			{
				Name:    "itemprogress_learner_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ItemProgressesColumns[2], ItemProgressesColumns[3]},
			},
			{
				Name:    "itemprogress_due_at",
				Unique:  false,
				Columns: []*schema.Column{ItemProgressesColumns[15]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "scheduler", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "transition", Type: field.TypeString},
		{Name: "prev_interval_days", Type: field.TypeInt},
		{Name: "new_interval_days", Type: field.TypeInt},
		{Name: "prev_ease", Type: field.TypeFloat64},
		{Name: "new_ease", Type: field.TypeFloat64},
		{Name: "prev_stability", Type: field.TypeFloat64},
		{Name: "new_stability", Type: field.TypeFloat64},
		{Name: "prev_difficulty", Type: field.TypeFloat64},
		{Name: "new_difficulty", Type: field.TypeFloat64},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_learner_id_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5], ReviewEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportEventsTable,
		ItemProgressesTable,
		ReviewEventsTable,
	}
)

func init() {
}
