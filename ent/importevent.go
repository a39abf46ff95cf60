// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parolabs/parola/ent/importevent"
)

// ImportEvent is the model entity for the ImportEvent schema.
type ImportEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// DeckName holds the value of the "deck_name" field.
	DeckName string `json:"deck_name,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile string `json:"source_file,omitempty"`
	// ImportedCount holds the value of the "imported_count" field.
	ImportedCount int `json:"imported_count,omitempty"`
	// SkippedCount holds the value of the "skipped_count" field.
	SkippedCount int `json:"skipped_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importevent.FieldID, importevent.FieldSequence, importevent.FieldImportedCount, importevent.FieldSkippedCount:
			values[i] = new(sql.NullInt64)
		case importevent.FieldBatchID, importevent.FieldLearnerID, importevent.FieldDeckName, importevent.FieldSourceFile:
			values[i] = new(sql.NullString)
		case importevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportEvent fields.
func (_m *ImportEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case importevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case importevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case importevent.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case importevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case importevent.FieldDeckName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deck_name", values[i])
			} else if value.Valid {
				_m.DeckName = value.String
			}
		case importevent.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = value.String
			}
		case importevent.FieldImportedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field imported_count", values[i])
			} else if value.Valid {
				_m.ImportedCount = int(value.Int64)
			}
		case importevent.FieldSkippedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_count", values[i])
			} else if value.Valid {
				_m.SkippedCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ImportEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImportEvent.
// Note that you need to call ImportEvent.Unwrap() before calling this method if this ImportEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportEvent) Update() *ImportEventUpdateOne {
	return NewImportEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportEvent) Unwrap() *ImportEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ImportEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("deck_name=")
	builder.WriteString(_m.DeckName)
	builder.WriteString(", ")
	builder.WriteString("source_file=")
	builder.WriteString(_m.SourceFile)
	builder.WriteString(", ")
	builder.WriteString("imported_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImportedCount))
	builder.WriteString(", ")
	builder.WriteString("skipped_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkippedCount))
	builder.WriteByte(')')
	return builder.String()
}

// ImportEvents is a parsable slice of ImportEvent.
type ImportEvents []*ImportEvent
