// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/parolabs/parola/ent/importevent"
	"github.com/parolabs/parola/ent/itemprogress"
	"github.com/parolabs/parola/ent/predicate"
	"github.com/parolabs/parola/ent/reviewevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImportEvent  = "ImportEvent"
	TypeItemProgress = "ItemProgress"
	TypeReviewEvent  = "ReviewEvent"
)

// ImportEventMutation represents an operation that mutates the ImportEvent nodes in the graph.
type ImportEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	batch_id          *string
	learner_id        *string
	deck_name         *string
	source_file       *string
	imported_count    *int
	addimported_count *int
	skipped_count     *int
	addskipped_count  *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ImportEvent, error)
	predicates        []predicate.ImportEvent
}

var _ ent.Mutation = (*ImportEventMutation)(nil)

// importeventOption allows management of the mutation configuration using functional options.
type importeventOption func(*ImportEventMutation)

// newImportEventMutation creates new mutation for the ImportEvent entity.
func newImportEventMutation(c config, op Op, opts ...importeventOption) *ImportEventMutation {
	m := &ImportEventMutation{
		config:        c,
		op:            op,
		typ:           TypeImportEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportEventID sets the ID field of the mutation.
func withImportEventID(id int) importeventOption {
	return func(m *ImportEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportEvent
		)
		m.oldValue = func(ctx context.Context) (*ImportEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportEvent sets the old ImportEvent of the mutation.
func withImportEvent(node *ImportEvent) importeventOption {
	return func(m *ImportEventMutation) {
		m.oldValue = func(context.Context) (*ImportEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ImportEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ImportEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ImportEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ImportEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ImportEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ImportEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ImportEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ImportEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetBatchID sets the "batch_id" field.
func (m *ImportEventMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ImportEventMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ImportEventMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ImportEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ImportEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ImportEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetDeckName sets the "deck_name" field.
func (m *ImportEventMutation) SetDeckName(s string) {
	m.deck_name = &s
}

// DeckName returns the value of the "deck_name" field in the mutation.
func (m *ImportEventMutation) DeckName() (r string, exists bool) {
	v := m.deck_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDeckName returns the old "deck_name" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldDeckName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeckName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeckName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeckName: %w", err)
	}
	return oldValue.DeckName, nil
}

// ResetDeckName resets all changes to the "deck_name" field.
func (m *ImportEventMutation) ResetDeckName() {
	m.deck_name = nil
}

// SetSourceFile sets the "source_file" field.
func (m *ImportEventMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *ImportEventMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ClearSourceFile clears the value of the "source_file" field.
func (m *ImportEventMutation) ClearSourceFile() {
	m.source_file = nil
	m.clearedFields[importevent.FieldSourceFile] = struct{}{}
}

// SourceFileCleared returns if the "source_file" field was cleared in this mutation.
func (m *ImportEventMutation) SourceFileCleared() bool {
	_, ok := m.clearedFields[importevent.FieldSourceFile]
	return ok
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *ImportEventMutation) ResetSourceFile() {
	m.source_file = nil
	delete(m.clearedFields, importevent.FieldSourceFile)
}

// SetImportedCount sets the "imported_count" field.
func (m *ImportEventMutation) SetImportedCount(i int) {
	m.imported_count = &i
	m.addimported_count = nil
}

// ImportedCount returns the value of the "imported_count" field in the mutation.
func (m *ImportEventMutation) ImportedCount() (r int, exists bool) {
	v := m.imported_count
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedCount returns the old "imported_count" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldImportedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedCount: %w", err)
	}
	return oldValue.ImportedCount, nil
}

// AddImportedCount adds i to the "imported_count" field.
func (m *ImportEventMutation) AddImportedCount(i int) {
	if m.addimported_count != nil {
		*m.addimported_count += i
	} else {
		m.addimported_count = &i
	}
}

// AddedImportedCount returns the value that was added to the "imported_count" field in this mutation.
func (m *ImportEventMutation) AddedImportedCount() (r int, exists bool) {
	v := m.addimported_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetImportedCount resets all changes to the "imported_count" field.
func (m *ImportEventMutation) ResetImportedCount() {
	m.imported_count = nil
	m.addimported_count = nil
}

// SetSkippedCount sets the "skipped_count" field.
func (m *ImportEventMutation) SetSkippedCount(i int) {
	m.skipped_count = &i
	m.addskipped_count = nil
}

// SkippedCount returns the value of the "skipped_count" field in the mutation.
func (m *ImportEventMutation) SkippedCount() (r int, exists bool) {
	v := m.skipped_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedCount returns the old "skipped_count" field's value of the ImportEvent entity.
// If the ImportEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportEventMutation) OldSkippedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedCount: %w", err)
	}
	return oldValue.SkippedCount, nil
}

// AddSkippedCount adds i to the "skipped_count" field.
func (m *ImportEventMutation) AddSkippedCount(i int) {
	if m.addskipped_count != nil {
		*m.addskipped_count += i
	} else {
		m.addskipped_count = &i
	}
}

// AddedSkippedCount returns the value that was added to the "skipped_count" field in this mutation.
func (m *ImportEventMutation) AddedSkippedCount() (r int, exists bool) {
	v := m.addskipped_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkippedCount resets all changes to the "skipped_count" field.
func (m *ImportEventMutation) ResetSkippedCount() {
	m.skipped_count = nil
	m.addskipped_count = nil
}

// Where appends a list predicates to the ImportEventMutation builder.
func (m *ImportEventMutation) Where(ps ...predicate.ImportEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportEvent).
func (m *ImportEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, importevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, importevent.FieldTimestamp)
	}
	if m.batch_id != nil {
		fields = append(fields, importevent.FieldBatchID)
	}
	if m.learner_id != nil {
		fields = append(fields, importevent.FieldLearnerID)
	}
	if m.deck_name != nil {
		fields = append(fields, importevent.FieldDeckName)
	}
	if m.source_file != nil {
		fields = append(fields, importevent.FieldSourceFile)
	}
	if m.imported_count != nil {
		fields = append(fields, importevent.FieldImportedCount)
	}
	if m.skipped_count != nil {
		fields = append(fields, importevent.FieldSkippedCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importevent.FieldSequence:
		return m.Sequence()
	case importevent.FieldTimestamp:
		return m.Timestamp()
	case importevent.FieldBatchID:
		return m.BatchID()
	case importevent.FieldLearnerID:
		return m.LearnerID()
	case importevent.FieldDeckName:
		return m.DeckName()
	case importevent.FieldSourceFile:
		return m.SourceFile()
	case importevent.FieldImportedCount:
		return m.ImportedCount()
	case importevent.FieldSkippedCount:
		return m.SkippedCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importevent.FieldSequence:
		return m.OldSequence(ctx)
	case importevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case importevent.FieldBatchID:
		return m.OldBatchID(ctx)
	case importevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case importevent.FieldDeckName:
		return m.OldDeckName(ctx)
	case importevent.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case importevent.FieldImportedCount:
		return m.OldImportedCount(ctx)
	case importevent.FieldSkippedCount:
		return m.OldSkippedCount(ctx)
	}
	return nil, fmt.Errorf("unknown ImportEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case importevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case importevent.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case importevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case importevent.FieldDeckName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeckName(v)
		return nil
	case importevent.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case importevent.FieldImportedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedCount(v)
		return nil
	case importevent.FieldSkippedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ImportEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, importevent.FieldSequence)
	}
	if m.addimported_count != nil {
		fields = append(fields, importevent.FieldImportedCount)
	}
	if m.addskipped_count != nil {
		fields = append(fields, importevent.FieldSkippedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importevent.FieldSequence:
		return m.AddedSequence()
	case importevent.FieldImportedCount:
		return m.AddedImportedCount()
	case importevent.FieldSkippedCount:
		return m.AddedSkippedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case importevent.FieldImportedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImportedCount(v)
		return nil
	case importevent.FieldSkippedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkippedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ImportEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importevent.FieldSourceFile) {
		fields = append(fields, importevent.FieldSourceFile)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportEventMutation) ClearField(name string) error {
	switch name {
	case importevent.FieldSourceFile:
		m.ClearSourceFile()
		return nil
	}
	return fmt.Errorf("unknown ImportEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportEventMutation) ResetField(name string) error {
	switch name {
	case importevent.FieldSequence:
		m.ResetSequence()
		return nil
	case importevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case importevent.FieldBatchID:
		m.ResetBatchID()
		return nil
	case importevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case importevent.FieldDeckName:
		m.ResetDeckName()
		return nil
	case importevent.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case importevent.FieldImportedCount:
		m.ResetImportedCount()
		return nil
	case importevent.FieldSkippedCount:
		m.ResetSkippedCount()
		return nil
	}
	return fmt.Errorf("unknown ImportEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportEvent edge %s", name)
}

// ItemProgressMutation represents an operation that mutates the ItemProgress nodes in the graph.
type ItemProgressMutation struct {
	config
	op               Op
	typ              string
	id               *int
	item_id          *string
	learner_id       *string
	kind             *string
	scheduler        *string
	term             *string
	translation      *string
	stability        *float64
	addstability     *float64
	difficulty       *float64
	adddifficulty    *float64
	ease             *float64
	addease          *float64
	repetitions      *int
	addrepetitions   *int
	lapses           *int
	addlapses        *int
	interval_days    *int
	addinterval_days *int
	state            *string
	step_index       *int
	addstep_index    *int
	due_at           *time.Time
	last_reviewed_at *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ItemProgress, error)
	predicates       []predicate.ItemProgress
}

var _ ent.Mutation = (*ItemProgressMutation)(nil)

// itemprogressOption allows management of the mutation configuration using functional options.
type itemprogressOption func(*ItemProgressMutation)

// newItemProgressMutation creates new mutation for the ItemProgress entity.
func newItemProgressMutation(c config, op Op, opts ...itemprogressOption) *ItemProgressMutation {
	m := &ItemProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeItemProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemProgressID sets the ID field of the mutation.
func withItemProgressID(id int) itemprogressOption {
	return func(m *ItemProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *ItemProgress
		)
		m.oldValue = func(ctx context.Context) (*ItemProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItemProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItemProgress sets the old ItemProgress of the mutation.
func withItemProgress(node *ItemProgress) itemprogressOption {
	return func(m *ItemProgressMutation) {
		m.oldValue = func(context.Context) (*ItemProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItemProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *ItemProgressMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ItemProgressMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ItemProgressMutation) ResetItemID() {
	m.item_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ItemProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ItemProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ItemProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetKind sets the "kind" field.
func (m *ItemProgressMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ItemProgressMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ItemProgressMutation) ResetKind() {
	m.kind = nil
}

// SetScheduler sets the "scheduler" field.
func (m *ItemProgressMutation) SetScheduler(s string) {
	m.scheduler = &s
}

// Scheduler returns the value of the "scheduler" field in the mutation.
func (m *ItemProgressMutation) Scheduler() (r string, exists bool) {
	v := m.scheduler
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduler returns the old "scheduler" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldScheduler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduler: %w", err)
	}
	return oldValue.Scheduler, nil
}

// ResetScheduler resets all changes to the "scheduler" field.
func (m *ItemProgressMutation) ResetScheduler() {
	m.scheduler = nil
}

// SetTerm sets the "term" field.
func (m *ItemProgressMutation) SetTerm(s string) {
	m.term = &s
}

// Term returns the value of the "term" field in the mutation.
func (m *ItemProgressMutation) Term() (r string, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// ResetTerm resets all changes to the "term" field.
func (m *ItemProgressMutation) ResetTerm() {
	m.term = nil
}

// SetTranslation sets the "translation" field.
func (m *ItemProgressMutation) SetTranslation(s string) {
	m.translation = &s
}

// Translation returns the value of the "translation" field in the mutation.
func (m *ItemProgressMutation) Translation() (r string, exists bool) {
	v := m.translation
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslation returns the old "translation" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldTranslation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslation: %w", err)
	}
	return oldValue.Translation, nil
}

// ClearTranslation clears the value of the "translation" field.
func (m *ItemProgressMutation) ClearTranslation() {
	m.translation = nil
	m.clearedFields[itemprogress.FieldTranslation] = struct{}{}
}

// TranslationCleared returns if the "translation" field was cleared in this mutation.
func (m *ItemProgressMutation) TranslationCleared() bool {
	_, ok := m.clearedFields[itemprogress.FieldTranslation]
	return ok
}

// ResetTranslation resets all changes to the "translation" field.
func (m *ItemProgressMutation) ResetTranslation() {
	m.translation = nil
	delete(m.clearedFields, itemprogress.FieldTranslation)
}

// SetStability sets the "stability" field.
func (m *ItemProgressMutation) SetStability(f float64) {
	m.stability = &f
	m.addstability = nil
}

// Stability returns the value of the "stability" field in the mutation.
func (m *ItemProgressMutation) Stability() (r float64, exists bool) {
	v := m.stability
	if v == nil {
		return
	}
	return *v, true
}

// OldStability returns the old "stability" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStability: %w", err)
	}
	return oldValue.Stability, nil
}

// AddStability adds f to the "stability" field.
func (m *ItemProgressMutation) AddStability(f float64) {
	if m.addstability != nil {
		*m.addstability += f
	} else {
		m.addstability = &f
	}
}

// AddedStability returns the value that was added to the "stability" field in this mutation.
func (m *ItemProgressMutation) AddedStability() (r float64, exists bool) {
	v := m.addstability
	if v == nil {
		return
	}
	return *v, true
}

// ResetStability resets all changes to the "stability" field.
func (m *ItemProgressMutation) ResetStability() {
	m.stability = nil
	m.addstability = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ItemProgressMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ItemProgressMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *ItemProgressMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ItemProgressMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ItemProgressMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetEase sets the "ease" field.
func (m *ItemProgressMutation) SetEase(f float64) {
	m.ease = &f
	m.addease = nil
}

// Ease returns the value of the "ease" field in the mutation.
func (m *ItemProgressMutation) Ease() (r float64, exists bool) {
	v := m.ease
	if v == nil {
		return
	}
	return *v, true
}

// OldEase returns the old "ease" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEase: %w", err)
	}
	return oldValue.Ease, nil
}

// AddEase adds f to the "ease" field.
func (m *ItemProgressMutation) AddEase(f float64) {
	if m.addease != nil {
		*m.addease += f
	} else {
		m.addease = &f
	}
}

// AddedEase returns the value that was added to the "ease" field in this mutation.
func (m *ItemProgressMutation) AddedEase() (r float64, exists bool) {
	v := m.addease
	if v == nil {
		return
	}
	return *v, true
}

// ResetEase resets all changes to the "ease" field.
func (m *ItemProgressMutation) ResetEase() {
	m.ease = nil
	m.addease = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *ItemProgressMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *ItemProgressMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *ItemProgressMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *ItemProgressMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *ItemProgressMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetLapses sets the "lapses" field.
func (m *ItemProgressMutation) SetLapses(i int) {
	m.lapses = &i
	m.addlapses = nil
}

// Lapses returns the value of the "lapses" field in the mutation.
func (m *ItemProgressMutation) Lapses() (r int, exists bool) {
	v := m.lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldLapses returns the old "lapses" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapses: %w", err)
	}
	return oldValue.Lapses, nil
}

// AddLapses adds i to the "lapses" field.
func (m *ItemProgressMutation) AddLapses(i int) {
	if m.addlapses != nil {
		*m.addlapses += i
	} else {
		m.addlapses = &i
	}
}

// AddedLapses returns the value that was added to the "lapses" field in this mutation.
func (m *ItemProgressMutation) AddedLapses() (r int, exists bool) {
	v := m.addlapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapses resets all changes to the "lapses" field.
func (m *ItemProgressMutation) ResetLapses() {
	m.lapses = nil
	m.addlapses = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ItemProgressMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ItemProgressMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ItemProgressMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ItemProgressMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ItemProgressMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetState sets the "state" field.
func (m *ItemProgressMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ItemProgressMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ItemProgressMutation) ResetState() {
	m.state = nil
}

// SetStepIndex sets the "step_index" field.
func (m *ItemProgressMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *ItemProgressMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *ItemProgressMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *ItemProgressMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *ItemProgressMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetDueAt sets the "due_at" field.
func (m *ItemProgressMutation) SetDueAt(t time.Time) {
	m.due_at = &t
}

// DueAt returns the value of the "due_at" field in the mutation.
func (m *ItemProgressMutation) DueAt() (r time.Time, exists bool) {
	v := m.due_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDueAt returns the old "due_at" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldDueAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueAt: %w", err)
	}
	return oldValue.DueAt, nil
}

// ClearDueAt clears the value of the "due_at" field.
func (m *ItemProgressMutation) ClearDueAt() {
	m.due_at = nil
	m.clearedFields[itemprogress.FieldDueAt] = struct{}{}
}

// DueAtCleared returns if the "due_at" field was cleared in this mutation.
func (m *ItemProgressMutation) DueAtCleared() bool {
	_, ok := m.clearedFields[itemprogress.FieldDueAt]
	return ok
}

// ResetDueAt resets all changes to the "due_at" field.
func (m *ItemProgressMutation) ResetDueAt() {
	m.due_at = nil
	delete(m.clearedFields, itemprogress.FieldDueAt)
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *ItemProgressMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *ItemProgressMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *ItemProgressMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[itemprogress.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *ItemProgressMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[itemprogress.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *ItemProgressMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, itemprogress.FieldLastReviewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ItemProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ItemProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ItemProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ItemProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ItemProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ItemProgress entity.
// If the ItemProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ItemProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ItemProgressMutation builder.
func (m *ItemProgressMutation) Where(ps ...predicate.ItemProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItemProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItemProgress).
func (m *ItemProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemProgressMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.item_id != nil {
		fields = append(fields, itemprogress.FieldItemID)
	}
	if m.learner_id != nil {
		fields = append(fields, itemprogress.FieldLearnerID)
	}
	if m.kind != nil {
		fields = append(fields, itemprogress.FieldKind)
	}
	if m.scheduler != nil {
		fields = append(fields, itemprogress.FieldScheduler)
	}
	if m.term != nil {
		fields = append(fields, itemprogress.FieldTerm)
	}
	if m.translation != nil {
		fields = append(fields, itemprogress.FieldTranslation)
	}
	if m.stability != nil {
		fields = append(fields, itemprogress.FieldStability)
	}
	if m.difficulty != nil {
		fields = append(fields, itemprogress.FieldDifficulty)
	}
	if m.ease != nil {
		fields = append(fields, itemprogress.FieldEase)
	}
	if m.repetitions != nil {
		fields = append(fields, itemprogress.FieldRepetitions)
	}
	if m.lapses != nil {
		fields = append(fields, itemprogress.FieldLapses)
	}
	if m.interval_days != nil {
		fields = append(fields, itemprogress.FieldIntervalDays)
	}
	if m.state != nil {
		fields = append(fields, itemprogress.FieldState)
	}
	if m.step_index != nil {
		fields = append(fields, itemprogress.FieldStepIndex)
	}
	if m.due_at != nil {
		fields = append(fields, itemprogress.FieldDueAt)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, itemprogress.FieldLastReviewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, itemprogress.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, itemprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itemprogress.FieldItemID:
		return m.ItemID()
	case itemprogress.FieldLearnerID:
		return m.LearnerID()
	case itemprogress.FieldKind:
		return m.Kind()
	case itemprogress.FieldScheduler:
		return m.Scheduler()
	case itemprogress.FieldTerm:
		return m.Term()
	case itemprogress.FieldTranslation:
		return m.Translation()
	case itemprogress.FieldStability:
		return m.Stability()
	case itemprogress.FieldDifficulty:
		return m.Difficulty()
	case itemprogress.FieldEase:
		return m.Ease()
	case itemprogress.FieldRepetitions:
		return m.Repetitions()
	case itemprogress.FieldLapses:
		return m.Lapses()
	case itemprogress.FieldIntervalDays:
		return m.IntervalDays()
	case itemprogress.FieldState:
		return m.State()
	case itemprogress.FieldStepIndex:
		return m.StepIndex()
	case itemprogress.FieldDueAt:
		return m.DueAt()
	case itemprogress.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case itemprogress.FieldCreatedAt:
		return m.CreatedAt()
	case itemprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itemprogress.FieldItemID:
		return m.OldItemID(ctx)
	case itemprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case itemprogress.FieldKind:
		return m.OldKind(ctx)
	case itemprogress.FieldScheduler:
		return m.OldScheduler(ctx)
	case itemprogress.FieldTerm:
		return m.OldTerm(ctx)
	case itemprogress.FieldTranslation:
		return m.OldTranslation(ctx)
	case itemprogress.FieldStability:
		return m.OldStability(ctx)
	case itemprogress.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case itemprogress.FieldEase:
		return m.OldEase(ctx)
	case itemprogress.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case itemprogress.FieldLapses:
		return m.OldLapses(ctx)
	case itemprogress.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case itemprogress.FieldState:
		return m.OldState(ctx)
	case itemprogress.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case itemprogress.FieldDueAt:
		return m.OldDueAt(ctx)
	case itemprogress.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case itemprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case itemprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ItemProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itemprogress.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case itemprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case itemprogress.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case itemprogress.FieldScheduler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduler(v)
		return nil
	case itemprogress.FieldTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case itemprogress.FieldTranslation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslation(v)
		return nil
	case itemprogress.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStability(v)
		return nil
	case itemprogress.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case itemprogress.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEase(v)
		return nil
	case itemprogress.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case itemprogress.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapses(v)
		return nil
	case itemprogress.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case itemprogress.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case itemprogress.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case itemprogress.FieldDueAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueAt(v)
		return nil
	case itemprogress.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case itemprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case itemprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ItemProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemProgressMutation) AddedFields() []string {
	var fields []string
	if m.addstability != nil {
		fields = append(fields, itemprogress.FieldStability)
	}
	if m.adddifficulty != nil {
		fields = append(fields, itemprogress.FieldDifficulty)
	}
	if m.addease != nil {
		fields = append(fields, itemprogress.FieldEase)
	}
	if m.addrepetitions != nil {
		fields = append(fields, itemprogress.FieldRepetitions)
	}
	if m.addlapses != nil {
		fields = append(fields, itemprogress.FieldLapses)
	}
	if m.addinterval_days != nil {
		fields = append(fields, itemprogress.FieldIntervalDays)
	}
	if m.addstep_index != nil {
		fields = append(fields, itemprogress.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itemprogress.FieldStability:
		return m.AddedStability()
	case itemprogress.FieldDifficulty:
		return m.AddedDifficulty()
	case itemprogress.FieldEase:
		return m.AddedEase()
	case itemprogress.FieldRepetitions:
		return m.AddedRepetitions()
	case itemprogress.FieldLapses:
		return m.AddedLapses()
	case itemprogress.FieldIntervalDays:
		return m.AddedIntervalDays()
	case itemprogress.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itemprogress.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStability(v)
		return nil
	case itemprogress.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case itemprogress.FieldEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEase(v)
		return nil
	case itemprogress.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case itemprogress.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapses(v)
		return nil
	case itemprogress.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case itemprogress.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ItemProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(itemprogress.FieldTranslation) {
		fields = append(fields, itemprogress.FieldTranslation)
	}
	if m.FieldCleared(itemprogress.FieldDueAt) {
		fields = append(fields, itemprogress.FieldDueAt)
	}
	if m.FieldCleared(itemprogress.FieldLastReviewedAt) {
		fields = append(fields, itemprogress.FieldLastReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemProgressMutation) ClearField(name string) error {
	switch name {
	case itemprogress.FieldTranslation:
		m.ClearTranslation()
		return nil
	case itemprogress.FieldDueAt:
		m.ClearDueAt()
		return nil
	case itemprogress.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown ItemProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemProgressMutation) ResetField(name string) error {
	switch name {
	case itemprogress.FieldItemID:
		m.ResetItemID()
		return nil
	case itemprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case itemprogress.FieldKind:
		m.ResetKind()
		return nil
	case itemprogress.FieldScheduler:
		m.ResetScheduler()
		return nil
	case itemprogress.FieldTerm:
		m.ResetTerm()
		return nil
	case itemprogress.FieldTranslation:
		m.ResetTranslation()
		return nil
	case itemprogress.FieldStability:
		m.ResetStability()
		return nil
	case itemprogress.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case itemprogress.FieldEase:
		m.ResetEase()
		return nil
	case itemprogress.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case itemprogress.FieldLapses:
		m.ResetLapses()
		return nil
	case itemprogress.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case itemprogress.FieldState:
		m.ResetState()
		return nil
	case itemprogress.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case itemprogress.FieldDueAt:
		m.ResetDueAt()
		return nil
	case itemprogress.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case itemprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case itemprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ItemProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ItemProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ItemProgress edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	entry_id              *string
	item_id               *string
	learner_id            *string
	kind                  *string
	scheduler             *string
	rating                *int
	addrating             *int
	transition            *string
	prev_interval_days    *int
	addprev_interval_days *int
	new_interval_days     *int
	addnew_interval_days  *int
	prev_ease             *float64
	addprev_ease          *float64
	new_ease              *float64
	addnew_ease           *float64
	prev_stability        *float64
	addprev_stability     *float64
	new_stability         *float64
	addnew_stability      *float64
	prev_difficulty       *float64
	addprev_difficulty    *float64
	new_difficulty        *float64
	addnew_difficulty     *float64
	latency_ms            *int
	addlatency_ms         *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ReviewEvent, error)
	predicates            []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEntryID sets the "entry_id" field.
func (m *ReviewEventMutation) SetEntryID(s string) {
	m.entry_id = &s
}

// EntryID returns the value of the "entry_id" field in the mutation.
func (m *ReviewEventMutation) EntryID() (r string, exists bool) {
	v := m.entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryID returns the old "entry_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldEntryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryID: %w", err)
	}
	return oldValue.EntryID, nil
}

// ResetEntryID resets all changes to the "entry_id" field.
func (m *ReviewEventMutation) ResetEntryID() {
	m.entry_id = nil
}

// SetItemID sets the "item_id" field.
func (m *ReviewEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ReviewEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ReviewEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *ReviewEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ReviewEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ReviewEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetKind sets the "kind" field.
func (m *ReviewEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ReviewEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ReviewEventMutation) ResetKind() {
	m.kind = nil
}

// SetScheduler sets the "scheduler" field.
func (m *ReviewEventMutation) SetScheduler(s string) {
	m.scheduler = &s
}

// Scheduler returns the value of the "scheduler" field in the mutation.
func (m *ReviewEventMutation) Scheduler() (r string, exists bool) {
	v := m.scheduler
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduler returns the old "scheduler" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldScheduler(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduler is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduler requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduler: %w", err)
	}
	return oldValue.Scheduler, nil
}

// ResetScheduler resets all changes to the "scheduler" field.
func (m *ReviewEventMutation) ResetScheduler() {
	m.scheduler = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *ReviewEventMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ReviewEventMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetTransition sets the "transition" field.
func (m *ReviewEventMutation) SetTransition(s string) {
	m.transition = &s
}

// Transition returns the value of the "transition" field in the mutation.
func (m *ReviewEventMutation) Transition() (r string, exists bool) {
	v := m.transition
	if v == nil {
		return
	}
	return *v, true
}

// OldTransition returns the old "transition" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTransition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransition: %w", err)
	}
	return oldValue.Transition, nil
}

// ResetTransition resets all changes to the "transition" field.
func (m *ReviewEventMutation) ResetTransition() {
	m.transition = nil
}

// SetPrevIntervalDays sets the "prev_interval_days" field.
func (m *ReviewEventMutation) SetPrevIntervalDays(i int) {
	m.prev_interval_days = &i
	m.addprev_interval_days = nil
}

// PrevIntervalDays returns the value of the "prev_interval_days" field in the mutation.
func (m *ReviewEventMutation) PrevIntervalDays() (r int, exists bool) {
	v := m.prev_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevIntervalDays returns the old "prev_interval_days" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldPrevIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevIntervalDays: %w", err)
	}
	return oldValue.PrevIntervalDays, nil
}

// AddPrevIntervalDays adds i to the "prev_interval_days" field.
func (m *ReviewEventMutation) AddPrevIntervalDays(i int) {
	if m.addprev_interval_days != nil {
		*m.addprev_interval_days += i
	} else {
		m.addprev_interval_days = &i
	}
}

// AddedPrevIntervalDays returns the value that was added to the "prev_interval_days" field in this mutation.
func (m *ReviewEventMutation) AddedPrevIntervalDays() (r int, exists bool) {
	v := m.addprev_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrevIntervalDays resets all changes to the "prev_interval_days" field.
func (m *ReviewEventMutation) ResetPrevIntervalDays() {
	m.prev_interval_days = nil
	m.addprev_interval_days = nil
}

// SetNewIntervalDays sets the "new_interval_days" field.
func (m *ReviewEventMutation) SetNewIntervalDays(i int) {
	m.new_interval_days = &i
	m.addnew_interval_days = nil
}

// NewIntervalDays returns the value of the "new_interval_days" field in the mutation.
func (m *ReviewEventMutation) NewIntervalDays() (r int, exists bool) {
	v := m.new_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldNewIntervalDays returns the old "new_interval_days" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldNewIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewIntervalDays: %w", err)
	}
	return oldValue.NewIntervalDays, nil
}

// AddNewIntervalDays adds i to the "new_interval_days" field.
func (m *ReviewEventMutation) AddNewIntervalDays(i int) {
	if m.addnew_interval_days != nil {
		*m.addnew_interval_days += i
	} else {
		m.addnew_interval_days = &i
	}
}

// AddedNewIntervalDays returns the value that was added to the "new_interval_days" field in this mutation.
func (m *ReviewEventMutation) AddedNewIntervalDays() (r int, exists bool) {
	v := m.addnew_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewIntervalDays resets all changes to the "new_interval_days" field.
func (m *ReviewEventMutation) ResetNewIntervalDays() {
	m.new_interval_days = nil
	m.addnew_interval_days = nil
}

// SetPrevEase sets the "prev_ease" field.
func (m *ReviewEventMutation) SetPrevEase(f float64) {
	m.prev_ease = &f
	m.addprev_ease = nil
}

// PrevEase returns the value of the "prev_ease" field in the mutation.
func (m *ReviewEventMutation) PrevEase() (r float64, exists bool) {
	v := m.prev_ease
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevEase returns the old "prev_ease" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldPrevEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevEase: %w", err)
	}
	return oldValue.PrevEase, nil
}

// AddPrevEase adds f to the "prev_ease" field.
func (m *ReviewEventMutation) AddPrevEase(f float64) {
	if m.addprev_ease != nil {
		*m.addprev_ease += f
	} else {
		m.addprev_ease = &f
	}
}

// AddedPrevEase returns the value that was added to the "prev_ease" field in this mutation.
func (m *ReviewEventMutation) AddedPrevEase() (r float64, exists bool) {
	v := m.addprev_ease
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrevEase resets all changes to the "prev_ease" field.
func (m *ReviewEventMutation) ResetPrevEase() {
	m.prev_ease = nil
	m.addprev_ease = nil
}

// SetNewEase sets the "new_ease" field.
func (m *ReviewEventMutation) SetNewEase(f float64) {
	m.new_ease = &f
	m.addnew_ease = nil
}

// NewEase returns the value of the "new_ease" field in the mutation.
func (m *ReviewEventMutation) NewEase() (r float64, exists bool) {
	v := m.new_ease
	if v == nil {
		return
	}
	return *v, true
}

// OldNewEase returns the old "new_ease" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldNewEase(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewEase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewEase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewEase: %w", err)
	}
	return oldValue.NewEase, nil
}

// AddNewEase adds f to the "new_ease" field.
func (m *ReviewEventMutation) AddNewEase(f float64) {
	if m.addnew_ease != nil {
		*m.addnew_ease += f
	} else {
		m.addnew_ease = &f
	}
}

// AddedNewEase returns the value that was added to the "new_ease" field in this mutation.
func (m *ReviewEventMutation) AddedNewEase() (r float64, exists bool) {
	v := m.addnew_ease
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewEase resets all changes to the "new_ease" field.
func (m *ReviewEventMutation) ResetNewEase() {
	m.new_ease = nil
	m.addnew_ease = nil
}

// SetPrevStability sets the "prev_stability" field.
func (m *ReviewEventMutation) SetPrevStability(f float64) {
	m.prev_stability = &f
	m.addprev_stability = nil
}

// PrevStability returns the value of the "prev_stability" field in the mutation.
func (m *ReviewEventMutation) PrevStability() (r float64, exists bool) {
	v := m.prev_stability
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevStability returns the old "prev_stability" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldPrevStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevStability: %w", err)
	}
	return oldValue.PrevStability, nil
}

// AddPrevStability adds f to the "prev_stability" field.
func (m *ReviewEventMutation) AddPrevStability(f float64) {
	if m.addprev_stability != nil {
		*m.addprev_stability += f
	} else {
		m.addprev_stability = &f
	}
}

// AddedPrevStability returns the value that was added to the "prev_stability" field in this mutation.
func (m *ReviewEventMutation) AddedPrevStability() (r float64, exists bool) {
	v := m.addprev_stability
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrevStability resets all changes to the "prev_stability" field.
func (m *ReviewEventMutation) ResetPrevStability() {
	m.prev_stability = nil
	m.addprev_stability = nil
}

// SetNewStability sets the "new_stability" field.
func (m *ReviewEventMutation) SetNewStability(f float64) {
	m.new_stability = &f
	m.addnew_stability = nil
}

// NewStability returns the value of the "new_stability" field in the mutation.
func (m *ReviewEventMutation) NewStability() (r float64, exists bool) {
	v := m.new_stability
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStability returns the old "new_stability" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldNewStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStability: %w", err)
	}
	return oldValue.NewStability, nil
}

// AddNewStability adds f to the "new_stability" field.
func (m *ReviewEventMutation) AddNewStability(f float64) {
	if m.addnew_stability != nil {
		*m.addnew_stability += f
	} else {
		m.addnew_stability = &f
	}
}

// AddedNewStability returns the value that was added to the "new_stability" field in this mutation.
func (m *ReviewEventMutation) AddedNewStability() (r float64, exists bool) {
	v := m.addnew_stability
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewStability resets all changes to the "new_stability" field.
func (m *ReviewEventMutation) ResetNewStability() {
	m.new_stability = nil
	m.addnew_stability = nil
}

// SetPrevDifficulty sets the "prev_difficulty" field.
func (m *ReviewEventMutation) SetPrevDifficulty(f float64) {
	m.prev_difficulty = &f
	m.addprev_difficulty = nil
}

// PrevDifficulty returns the value of the "prev_difficulty" field in the mutation.
func (m *ReviewEventMutation) PrevDifficulty() (r float64, exists bool) {
	v := m.prev_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevDifficulty returns the old "prev_difficulty" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldPrevDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevDifficulty: %w", err)
	}
	return oldValue.PrevDifficulty, nil
}

// AddPrevDifficulty adds f to the "prev_difficulty" field.
func (m *ReviewEventMutation) AddPrevDifficulty(f float64) {
	if m.addprev_difficulty != nil {
		*m.addprev_difficulty += f
	} else {
		m.addprev_difficulty = &f
	}
}

// AddedPrevDifficulty returns the value that was added to the "prev_difficulty" field in this mutation.
func (m *ReviewEventMutation) AddedPrevDifficulty() (r float64, exists bool) {
	v := m.addprev_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrevDifficulty resets all changes to the "prev_difficulty" field.
func (m *ReviewEventMutation) ResetPrevDifficulty() {
	m.prev_difficulty = nil
	m.addprev_difficulty = nil
}

// SetNewDifficulty sets the "new_difficulty" field.
func (m *ReviewEventMutation) SetNewDifficulty(f float64) {
	m.new_difficulty = &f
	m.addnew_difficulty = nil
}

// NewDifficulty returns the value of the "new_difficulty" field in the mutation.
func (m *ReviewEventMutation) NewDifficulty() (r float64, exists bool) {
	v := m.new_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldNewDifficulty returns the old "new_difficulty" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldNewDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewDifficulty: %w", err)
	}
	return oldValue.NewDifficulty, nil
}

// AddNewDifficulty adds f to the "new_difficulty" field.
func (m *ReviewEventMutation) AddNewDifficulty(f float64) {
	if m.addnew_difficulty != nil {
		*m.addnew_difficulty += f
	} else {
		m.addnew_difficulty = &f
	}
}

// AddedNewDifficulty returns the value that was added to the "new_difficulty" field in this mutation.
func (m *ReviewEventMutation) AddedNewDifficulty() (r float64, exists bool) {
	v := m.addnew_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewDifficulty resets all changes to the "new_difficulty" field.
func (m *ReviewEventMutation) ResetNewDifficulty() {
	m.new_difficulty = nil
	m.addnew_difficulty = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ReviewEventMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ReviewEventMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ReviewEventMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ReviewEventMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *ReviewEventMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[reviewevent.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *ReviewEventMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[reviewevent.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ReviewEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, reviewevent.FieldLatencyMs)
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.entry_id != nil {
		fields = append(fields, reviewevent.FieldEntryID)
	}
	if m.item_id != nil {
		fields = append(fields, reviewevent.FieldItemID)
	}
	if m.learner_id != nil {
		fields = append(fields, reviewevent.FieldLearnerID)
	}
	if m.kind != nil {
		fields = append(fields, reviewevent.FieldKind)
	}
	if m.scheduler != nil {
		fields = append(fields, reviewevent.FieldScheduler)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.transition != nil {
		fields = append(fields, reviewevent.FieldTransition)
	}
	if m.prev_interval_days != nil {
		fields = append(fields, reviewevent.FieldPrevIntervalDays)
	}
	if m.new_interval_days != nil {
		fields = append(fields, reviewevent.FieldNewIntervalDays)
	}
	if m.prev_ease != nil {
		fields = append(fields, reviewevent.FieldPrevEase)
	}
	if m.new_ease != nil {
		fields = append(fields, reviewevent.FieldNewEase)
	}
	if m.prev_stability != nil {
		fields = append(fields, reviewevent.FieldPrevStability)
	}
	if m.new_stability != nil {
		fields = append(fields, reviewevent.FieldNewStability)
	}
	if m.prev_difficulty != nil {
		fields = append(fields, reviewevent.FieldPrevDifficulty)
	}
	if m.new_difficulty != nil {
		fields = append(fields, reviewevent.FieldNewDifficulty)
	}
	if m.latency_ms != nil {
		fields = append(fields, reviewevent.FieldLatencyMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldEntryID:
		return m.EntryID()
	case reviewevent.FieldItemID:
		return m.ItemID()
	case reviewevent.FieldLearnerID:
		return m.LearnerID()
	case reviewevent.FieldKind:
		return m.Kind()
	case reviewevent.FieldScheduler:
		return m.Scheduler()
	case reviewevent.FieldRating:
		return m.Rating()
	case reviewevent.FieldTransition:
		return m.Transition()
	case reviewevent.FieldPrevIntervalDays:
		return m.PrevIntervalDays()
	case reviewevent.FieldNewIntervalDays:
		return m.NewIntervalDays()
	case reviewevent.FieldPrevEase:
		return m.PrevEase()
	case reviewevent.FieldNewEase:
		return m.NewEase()
	case reviewevent.FieldPrevStability:
		return m.PrevStability()
	case reviewevent.FieldNewStability:
		return m.NewStability()
	case reviewevent.FieldPrevDifficulty:
		return m.PrevDifficulty()
	case reviewevent.FieldNewDifficulty:
		return m.NewDifficulty()
	case reviewevent.FieldLatencyMs:
		return m.LatencyMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldEntryID:
		return m.OldEntryID(ctx)
	case reviewevent.FieldItemID:
		return m.OldItemID(ctx)
	case reviewevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case reviewevent.FieldKind:
		return m.OldKind(ctx)
	case reviewevent.FieldScheduler:
		return m.OldScheduler(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	case reviewevent.FieldTransition:
		return m.OldTransition(ctx)
	case reviewevent.FieldPrevIntervalDays:
		return m.OldPrevIntervalDays(ctx)
	case reviewevent.FieldNewIntervalDays:
		return m.OldNewIntervalDays(ctx)
	case reviewevent.FieldPrevEase:
		return m.OldPrevEase(ctx)
	case reviewevent.FieldNewEase:
		return m.OldNewEase(ctx)
	case reviewevent.FieldPrevStability:
		return m.OldPrevStability(ctx)
	case reviewevent.FieldNewStability:
		return m.OldNewStability(ctx)
	case reviewevent.FieldPrevDifficulty:
		return m.OldPrevDifficulty(ctx)
	case reviewevent.FieldNewDifficulty:
		return m.OldNewDifficulty(ctx)
	case reviewevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldEntryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryID(v)
		return nil
	case reviewevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case reviewevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case reviewevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case reviewevent.FieldScheduler:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduler(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewevent.FieldTransition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransition(v)
		return nil
	case reviewevent.FieldPrevIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevIntervalDays(v)
		return nil
	case reviewevent.FieldNewIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewIntervalDays(v)
		return nil
	case reviewevent.FieldPrevEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevEase(v)
		return nil
	case reviewevent.FieldNewEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewEase(v)
		return nil
	case reviewevent.FieldPrevStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevStability(v)
		return nil
	case reviewevent.FieldNewStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStability(v)
		return nil
	case reviewevent.FieldPrevDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevDifficulty(v)
		return nil
	case reviewevent.FieldNewDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewDifficulty(v)
		return nil
	case reviewevent.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addrating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.addprev_interval_days != nil {
		fields = append(fields, reviewevent.FieldPrevIntervalDays)
	}
	if m.addnew_interval_days != nil {
		fields = append(fields, reviewevent.FieldNewIntervalDays)
	}
	if m.addprev_ease != nil {
		fields = append(fields, reviewevent.FieldPrevEase)
	}
	if m.addnew_ease != nil {
		fields = append(fields, reviewevent.FieldNewEase)
	}
	if m.addprev_stability != nil {
		fields = append(fields, reviewevent.FieldPrevStability)
	}
	if m.addnew_stability != nil {
		fields = append(fields, reviewevent.FieldNewStability)
	}
	if m.addprev_difficulty != nil {
		fields = append(fields, reviewevent.FieldPrevDifficulty)
	}
	if m.addnew_difficulty != nil {
		fields = append(fields, reviewevent.FieldNewDifficulty)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, reviewevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldRating:
		return m.AddedRating()
	case reviewevent.FieldPrevIntervalDays:
		return m.AddedPrevIntervalDays()
	case reviewevent.FieldNewIntervalDays:
		return m.AddedNewIntervalDays()
	case reviewevent.FieldPrevEase:
		return m.AddedPrevEase()
	case reviewevent.FieldNewEase:
		return m.AddedNewEase()
	case reviewevent.FieldPrevStability:
		return m.AddedPrevStability()
	case reviewevent.FieldNewStability:
		return m.AddedNewStability()
	case reviewevent.FieldPrevDifficulty:
		return m.AddedPrevDifficulty()
	case reviewevent.FieldNewDifficulty:
		return m.AddedNewDifficulty()
	case reviewevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case reviewevent.FieldPrevIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrevIntervalDays(v)
		return nil
	case reviewevent.FieldNewIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewIntervalDays(v)
		return nil
	case reviewevent.FieldPrevEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrevEase(v)
		return nil
	case reviewevent.FieldNewEase:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewEase(v)
		return nil
	case reviewevent.FieldPrevStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrevStability(v)
		return nil
	case reviewevent.FieldNewStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewStability(v)
		return nil
	case reviewevent.FieldPrevDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrevDifficulty(v)
		return nil
	case reviewevent.FieldNewDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewDifficulty(v)
		return nil
	case reviewevent.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewevent.FieldLatencyMs) {
		fields = append(fields, reviewevent.FieldLatencyMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	switch name {
	case reviewevent.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldEntryID:
		m.ResetEntryID()
		return nil
	case reviewevent.FieldItemID:
		m.ResetItemID()
		return nil
	case reviewevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case reviewevent.FieldKind:
		m.ResetKind()
		return nil
	case reviewevent.FieldScheduler:
		m.ResetScheduler()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	case reviewevent.FieldTransition:
		m.ResetTransition()
		return nil
	case reviewevent.FieldPrevIntervalDays:
		m.ResetPrevIntervalDays()
		return nil
	case reviewevent.FieldNewIntervalDays:
		m.ResetNewIntervalDays()
		return nil
	case reviewevent.FieldPrevEase:
		m.ResetPrevEase()
		return nil
	case reviewevent.FieldNewEase:
		m.ResetNewEase()
		return nil
	case reviewevent.FieldPrevStability:
		m.ResetPrevStability()
		return nil
	case reviewevent.FieldNewStability:
		m.ResetNewStability()
		return nil
	case reviewevent.FieldPrevDifficulty:
		m.ResetPrevDifficulty()
		return nil
	case reviewevent.FieldNewDifficulty:
		m.ResetNewDifficulty()
		return nil
	case reviewevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}
