// Code generated by ent, DO NOT EDIT.

package importevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the importevent type in the database.
	Label = "import_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldDeckName holds the string denoting the deck_name field in the database.
	FieldDeckName = "deck_name"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldImportedCount holds the string denoting the imported_count field in the database.
	FieldImportedCount = "imported_count"
	// FieldSkippedCount holds the string denoting the skipped_count field in the database.
	FieldSkippedCount = "skipped_count"
	// Table holds the table name of the importevent in the database.
	Table = "import_events"
)

// Columns holds all SQL columns for importevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBatchID,
	FieldLearnerID,
	FieldDeckName,
	FieldSourceFile,
	FieldImportedCount,
	FieldSkippedCount,
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
	// BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	BatchIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DeckNameValidator is a validator for the "deck_name" field. It is called by the builders before save.
	DeckNameValidator func(string) error
)

// OrderOption defines the ordering options for the ImportEvent queries.
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

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByDeckName orders the results by the deck_name field.
func ByDeckName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeckName, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// ByImportedCount orders the results by the imported_count field.
func ByImportedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedCount, opts...).ToFunc()
}

// BySkippedCount orders the results by the skipped_count field.
func BySkippedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedCount, opts...).ToFunc()
}
