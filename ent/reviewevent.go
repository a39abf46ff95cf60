// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parolabs/parola/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// EntryID holds the value of the "entry_id" field.
	EntryID string `json:"entry_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Which algorithm produced this transition
	Scheduler string `json:"scheduler,omitempty"`
	// 0=again, 1=hard, 2=good, 3=easy
	Rating int `json:"rating,omitempty"`
	// Before/after lifecycle label, e.g. new→learning
	Transition string `json:"transition,omitempty"`
	// PrevIntervalDays holds the value of the "prev_interval_days" field.
	PrevIntervalDays int `json:"prev_interval_days,omitempty"`
	// NewIntervalDays holds the value of the "new_interval_days" field.
	NewIntervalDays int `json:"new_interval_days,omitempty"`
	// PrevEase holds the value of the "prev_ease" field.
	PrevEase float64 `json:"prev_ease,omitempty"`
	// NewEase holds the value of the "new_ease" field.
	NewEase float64 `json:"new_ease,omitempty"`
	// PrevStability holds the value of the "prev_stability" field.
	PrevStability float64 `json:"prev_stability,omitempty"`
	// NewStability holds the value of the "new_stability" field.
	NewStability float64 `json:"new_stability,omitempty"`
	// PrevDifficulty holds the value of the "prev_difficulty" field.
	PrevDifficulty float64 `json:"prev_difficulty,omitempty"`
	// NewDifficulty holds the value of the "new_difficulty" field.
	NewDifficulty float64 `json:"new_difficulty,omitempty"`
	// Learner response time, when the client reports it
	LatencyMs    int `json:"latency_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldPrevEase, reviewevent.FieldNewEase, reviewevent.FieldPrevStability, reviewevent.FieldNewStability, reviewevent.FieldPrevDifficulty, reviewevent.FieldNewDifficulty:
			values[i] = new(sql.NullFloat64)
		case reviewevent.FieldID, reviewevent.FieldSequence, reviewevent.FieldRating, reviewevent.FieldPrevIntervalDays, reviewevent.FieldNewIntervalDays, reviewevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldEntryID, reviewevent.FieldItemID, reviewevent.FieldLearnerID, reviewevent.FieldKind, reviewevent.FieldScheduler, reviewevent.FieldTransition:
			values[i] = new(sql.NullString)
		case reviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewevent.FieldEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value.Valid {
				_m.EntryID = value.String
			}
		case reviewevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case reviewevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case reviewevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case reviewevent.FieldScheduler:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduler", values[i])
			} else if value.Valid {
				_m.Scheduler = value.String
			}
		case reviewevent.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case reviewevent.FieldTransition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transition", values[i])
			} else if value.Valid {
				_m.Transition = value.String
			}
		case reviewevent.FieldPrevIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prev_interval_days", values[i])
			} else if value.Valid {
				_m.PrevIntervalDays = int(value.Int64)
			}
		case reviewevent.FieldNewIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_interval_days", values[i])
			} else if value.Valid {
				_m.NewIntervalDays = int(value.Int64)
			}
		case reviewevent.FieldPrevEase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field prev_ease", values[i])
			} else if value.Valid {
				_m.PrevEase = value.Float64
			}
		case reviewevent.FieldNewEase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_ease", values[i])
			} else if value.Valid {
				_m.NewEase = value.Float64
			}
		case reviewevent.FieldPrevStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field prev_stability", values[i])
			} else if value.Valid {
				_m.PrevStability = value.Float64
			}
		case reviewevent.FieldNewStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_stability", values[i])
			} else if value.Valid {
				_m.NewStability = value.Float64
			}
		case reviewevent.FieldPrevDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field prev_difficulty", values[i])
			} else if value.Valid {
				_m.PrevDifficulty = value.Float64
			}
		case reviewevent.FieldNewDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field new_difficulty", values[i])
			} else if value.Valid {
				_m.NewDifficulty = value.Float64
			}
		case reviewevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entry_id=")
	builder.WriteString(_m.EntryID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("scheduler=")
	builder.WriteString(_m.Scheduler)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("transition=")
	builder.WriteString(_m.Transition)
	builder.WriteString(", ")
	builder.WriteString("prev_interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrevIntervalDays))
	builder.WriteString(", ")
	builder.WriteString("new_interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewIntervalDays))
	builder.WriteString(", ")
	builder.WriteString("prev_ease=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrevEase))
	builder.WriteString(", ")
	builder.WriteString("new_ease=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewEase))
	builder.WriteString(", ")
	builder.WriteString("prev_stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrevStability))
	builder.WriteString(", ")
	builder.WriteString("new_stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewStability))
	builder.WriteString(", ")
	builder.WriteString("prev_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrevDifficulty))
	builder.WriteString(", ")
	builder.WriteString("new_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewDifficulty))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
