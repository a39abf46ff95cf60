// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEntryID holds the string denoting the entry_id field in the database.
	FieldEntryID = "entry_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldScheduler holds the string denoting the scheduler field in the database.
	FieldScheduler = "scheduler"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldTransition holds the string denoting the transition field in the database.
	FieldTransition = "transition"
	// FieldPrevIntervalDays holds the string denoting the prev_interval_days field in the database.
	FieldPrevIntervalDays = "prev_interval_days"
	// FieldNewIntervalDays holds the string denoting the new_interval_days field in the database.
	FieldNewIntervalDays = "new_interval_days"
	// FieldPrevEase holds the string denoting the prev_ease field in the database.
	FieldPrevEase = "prev_ease"
	// FieldNewEase holds the string denoting the new_ease field in the database.
	FieldNewEase = "new_ease"
	// FieldPrevStability holds the string denoting the prev_stability field in the database.
	FieldPrevStability = "prev_stability"
	// FieldNewStability holds the string denoting the new_stability field in the database.
	FieldNewStability = "new_stability"
	// FieldPrevDifficulty holds the string denoting the prev_difficulty field in the database.
	FieldPrevDifficulty = "prev_difficulty"
	// FieldNewDifficulty holds the string denoting the new_difficulty field in the database.
	FieldNewDifficulty = "new_difficulty"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEntryID,
	FieldItemID,
	FieldLearnerID,
	FieldKind,
	FieldScheduler,
	FieldRating,
	FieldTransition,
	FieldPrevIntervalDays,
	FieldNewIntervalDays,
	FieldPrevEase,
	FieldNewEase,
	FieldPrevStability,
	FieldNewStability,
	FieldPrevDifficulty,
	FieldNewDifficulty,
	FieldLatencyMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	EntryIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// SchedulerValidator is a validator for the "scheduler" field. It is called by the builders before save.
	SchedulerValidator func(string) error
	// TransitionValidator is a validator for the "transition" field. It is called by the builders before save.
	TransitionValidator func(string) error
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEntryID orders the results by the entry_id field.
func ByEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByScheduler orders the results by the scheduler field.
func ByScheduler(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduler, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByTransition orders the results by the transition field.
func ByTransition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransition, opts...).ToFunc()
}

// ByPrevIntervalDays orders the results by the prev_interval_days field.
func ByPrevIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevIntervalDays, opts...).ToFunc()
}

// ByNewIntervalDays orders the results by the new_interval_days field.
func ByNewIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewIntervalDays, opts...).ToFunc()
}

// ByPrevEase orders the results by the prev_ease field.
func ByPrevEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevEase, opts...).ToFunc()
}

// ByNewEase orders the results by the new_ease field.
func ByNewEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewEase, opts...).ToFunc()
}

// ByPrevStability orders the results by the prev_stability field.
func ByPrevStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevStability, opts...).ToFunc()
}

// ByNewStability orders the results by the new_stability field.
func ByNewStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewStability, opts...).ToFunc()
}

// ByPrevDifficulty orders the results by the prev_difficulty field.
func ByPrevDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevDifficulty, opts...).ToFunc()
}

// ByNewDifficulty orders the results by the new_difficulty field.
func ByNewDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewDifficulty, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}
