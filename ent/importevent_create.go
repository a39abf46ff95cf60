// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parolabs/parola/ent/importevent"
)

// ImportEventCreate is the builder for creating a ImportEvent entity.
type ImportEventCreate struct {
	config
	mutation *ImportEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ImportEventCreate) SetSequence(v int64) *ImportEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ImportEventCreate) SetTimestamp(v time.Time) *ImportEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ImportEventCreate) SetNillableTimestamp(v *time.Time) *ImportEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ImportEventCreate) SetBatchID(v string) *ImportEventCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ImportEventCreate) SetLearnerID(v string) *ImportEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetDeckName sets the "deck_name" field.
func (_c *ImportEventCreate) SetDeckName(v string) *ImportEventCreate {
	_c.mutation.SetDeckName(v)
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *ImportEventCreate) SetSourceFile(v string) *ImportEventCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *ImportEventCreate) SetNillableSourceFile(v *string) *ImportEventCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetImportedCount sets the "imported_count" field.
func (_c *ImportEventCreate) SetImportedCount(v int) *ImportEventCreate {
	_c.mutation.SetImportedCount(v)
	return _c
}

// SetSkippedCount sets the "skipped_count" field.
func (_c *ImportEventCreate) SetSkippedCount(v int) *ImportEventCreate {
	_c.mutation.SetSkippedCount(v)
	return _c
}

// Mutation returns the ImportEventMutation object of the builder.
func (_c *ImportEventCreate) Mutation() *ImportEventMutation {
	return _c.mutation
}

// Save creates the ImportEvent in the database.
func (_c *ImportEventCreate) Save(ctx context.Context) (*ImportEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportEventCreate) SaveX(ctx context.Context) *ImportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := importevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ImportEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ImportEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "ImportEvent.batch_id"`)}
	}
	if v, ok := _c.mutation.BatchID(); ok {
		if err := importevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "ImportEvent.batch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ImportEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := importevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ImportEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeckName(); !ok {
		return &ValidationError{Name: "deck_name", err: errors.New(`ent: missing required field "ImportEvent.deck_name"`)}
	}
	if v, ok := _c.mutation.DeckName(); ok {
		if err := importevent.DeckNameValidator(v); err != nil {
			return &ValidationError{Name: "deck_name", err: fmt.Errorf(`ent: validator failed for field "ImportEvent.deck_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedCount(); !ok {
		return &ValidationError{Name: "imported_count", err: errors.New(`ent: missing required field "ImportEvent.imported_count"`)}
	}
	if _, ok := _c.mutation.SkippedCount(); !ok {
		return &ValidationError{Name: "skipped_count", err: errors.New(`ent: missing required field "ImportEvent.skipped_count"`)}
	}
	return nil
}

func (_c *ImportEventCreate) sqlSave(ctx context.Context) (*ImportEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportEventCreate) createSpec() (*ImportEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importevent.Table, sqlgraph.NewFieldSpec(importevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(importevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(importevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(importevent.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(importevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.DeckName(); ok {
		_spec.SetField(importevent.FieldDeckName, field.TypeString, value)
		_node.DeckName = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(importevent.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.ImportedCount(); ok {
		_spec.SetField(importevent.FieldImportedCount, field.TypeInt, value)
		_node.ImportedCount = value
	}
	if value, ok := _c.mutation.SkippedCount(); ok {
		_spec.SetField(importevent.FieldSkippedCount, field.TypeInt, value)
		_node.SkippedCount = value
	}
	return _node, _spec
}

// ImportEventCreateBulk is the builder for creating many ImportEvent entities in bulk.
type ImportEventCreateBulk struct {
	config
	err      error
	builders []*ImportEventCreate
}

// Save creates the ImportEvent entities in the database.
func (_c *ImportEventCreateBulk) Save(ctx context.Context) ([]*ImportEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportEventCreateBulk) SaveX(ctx context.Context) []*ImportEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
