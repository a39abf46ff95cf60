// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parolabs/parola/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReviewEventCreate) SetSequence(v int64) *ReviewEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewEventCreate) SetTimestamp(v time.Time) *ReviewEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableTimestamp(v *time.Time) *ReviewEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEntryID sets the "entry_id" field.
func (_c *ReviewEventCreate) SetEntryID(v string) *ReviewEventCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewEventCreate) SetItemID(v string) *ReviewEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReviewEventCreate) SetLearnerID(v string) *ReviewEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ReviewEventCreate) SetKind(v string) *ReviewEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetScheduler sets the "scheduler" field.
func (_c *ReviewEventCreate) SetScheduler(v string) *ReviewEventCreate {
	_c.mutation.SetScheduler(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *ReviewEventCreate) SetRating(v int) *ReviewEventCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetTransition sets the "transition" field.
func (_c *ReviewEventCreate) SetTransition(v string) *ReviewEventCreate {
	_c.mutation.SetTransition(v)
	return _c
}

// SetPrevIntervalDays sets the "prev_interval_days" field.
func (_c *ReviewEventCreate) SetPrevIntervalDays(v int) *ReviewEventCreate {
	_c.mutation.SetPrevIntervalDays(v)
	return _c
}

// SetNewIntervalDays sets the "new_interval_days" field.
func (_c *ReviewEventCreate) SetNewIntervalDays(v int) *ReviewEventCreate {
	_c.mutation.SetNewIntervalDays(v)
	return _c
}

// SetPrevEase sets the "prev_ease" field.
func (_c *ReviewEventCreate) SetPrevEase(v float64) *ReviewEventCreate {
	_c.mutation.SetPrevEase(v)
	return _c
}

// SetNewEase sets the "new_ease" field.
func (_c *ReviewEventCreate) SetNewEase(v float64) *ReviewEventCreate {
	_c.mutation.SetNewEase(v)
	return _c
}

// SetPrevStability sets the "prev_stability" field.
func (_c *ReviewEventCreate) SetPrevStability(v float64) *ReviewEventCreate {
	_c.mutation.SetPrevStability(v)
	return _c
}

// SetNewStability sets the "new_stability" field.
func (_c *ReviewEventCreate) SetNewStability(v float64) *ReviewEventCreate {
	_c.mutation.SetNewStability(v)
	return _c
}

// SetPrevDifficulty sets the "prev_difficulty" field.
func (_c *ReviewEventCreate) SetPrevDifficulty(v float64) *ReviewEventCreate {
	_c.mutation.SetPrevDifficulty(v)
	return _c
}

// SetNewDifficulty sets the "new_difficulty" field.
func (_c *ReviewEventCreate) SetNewDifficulty(v float64) *ReviewEventCreate {
	_c.mutation.SetNewDifficulty(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ReviewEventCreate) SetLatencyMs(v int) *ReviewEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableLatencyMs(v *int) *ReviewEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_c *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return _c.mutation
}

// Save creates the ReviewEvent in the database.
func (_c *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "ReviewEvent.entry_id"`)}
	}
	if v, ok := _c.mutation.EntryID(); ok {
		if err := reviewevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.entry_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := reviewevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ReviewEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := reviewevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scheduler(); !ok {
		return &ValidationError{Name: "scheduler", err: errors.New(`ent: missing required field "ReviewEvent.scheduler"`)}
	}
	if v, ok := _c.mutation.Scheduler(); ok {
		if err := reviewevent.SchedulerValidator(v); err != nil {
			return &ValidationError{Name: "scheduler", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.scheduler": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ReviewEvent.rating"`)}
	}
	if _, ok := _c.mutation.Transition(); !ok {
		return &ValidationError{Name: "transition", err: errors.New(`ent: missing required field "ReviewEvent.transition"`)}
	}
	if v, ok := _c.mutation.Transition(); ok {
		if err := reviewevent.TransitionValidator(v); err != nil {
			return &ValidationError{Name: "transition", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.transition": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrevIntervalDays(); !ok {
		return &ValidationError{Name: "prev_interval_days", err: errors.New(`ent: missing required field "ReviewEvent.prev_interval_days"`)}
	}
	if _, ok := _c.mutation.NewIntervalDays(); !ok {
		return &ValidationError{Name: "new_interval_days", err: errors.New(`ent: missing required field "ReviewEvent.new_interval_days"`)}
	}
	if _, ok := _c.mutation.PrevEase(); !ok {
		return &ValidationError{Name: "prev_ease", err: errors.New(`ent: missing required field "ReviewEvent.prev_ease"`)}
	}
	if _, ok := _c.mutation.NewEase(); !ok {
		return &ValidationError{Name: "new_ease", err: errors.New(`ent: missing required field "ReviewEvent.new_ease"`)}
	}
	if _, ok := _c.mutation.PrevStability(); !ok {
		return &ValidationError{Name: "prev_stability", err: errors.New(`ent: missing required field "ReviewEvent.prev_stability"`)}
	}
	if _, ok := _c.mutation.NewStability(); !ok {
		return &ValidationError{Name: "new_stability", err: errors.New(`ent: missing required field "ReviewEvent.new_stability"`)}
	}
	if _, ok := _c.mutation.PrevDifficulty(); !ok {
		return &ValidationError{Name: "prev_difficulty", err: errors.New(`ent: missing required field "ReviewEvent.prev_difficulty"`)}
	}
	if _, ok := _c.mutation.NewDifficulty(); !ok {
		return &ValidationError{Name: "new_difficulty", err: errors.New(`ent: missing required field "ReviewEvent.new_difficulty"`)}
	}
	return nil
}

func (_c *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
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

func (_c *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EntryID(); ok {
		_spec.SetField(reviewevent.FieldEntryID, field.TypeString, value)
		_node.EntryID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(reviewevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(reviewevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Scheduler(); ok {
		_spec.SetField(reviewevent.FieldScheduler, field.TypeString, value)
		_node.Scheduler = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Transition(); ok {
		_spec.SetField(reviewevent.FieldTransition, field.TypeString, value)
		_node.Transition = value
	}
	if value, ok := _c.mutation.PrevIntervalDays(); ok {
		_spec.SetField(reviewevent.FieldPrevIntervalDays, field.TypeInt, value)
		_node.PrevIntervalDays = value
	}
	if value, ok := _c.mutation.NewIntervalDays(); ok {
		_spec.SetField(reviewevent.FieldNewIntervalDays, field.TypeInt, value)
		_node.NewIntervalDays = value
	}
	if value, ok := _c.mutation.PrevEase(); ok {
		_spec.SetField(reviewevent.FieldPrevEase, field.TypeFloat64, value)
		_node.PrevEase = value
	}
	if value, ok := _c.mutation.NewEase(); ok {
		_spec.SetField(reviewevent.FieldNewEase, field.TypeFloat64, value)
		_node.NewEase = value
	}
	if value, ok := _c.mutation.PrevStability(); ok {
		_spec.SetField(reviewevent.FieldPrevStability, field.TypeFloat64, value)
		_node.PrevStability = value
	}
	if value, ok := _c.mutation.NewStability(); ok {
		_spec.SetField(reviewevent.FieldNewStability, field.TypeFloat64, value)
		_node.NewStability = value
	}
	if value, ok := _c.mutation.PrevDifficulty(); ok {
		_spec.SetField(reviewevent.FieldPrevDifficulty, field.TypeFloat64, value)
		_node.PrevDifficulty = value
	}
	if value, ok := _c.mutation.NewDifficulty(); ok {
		_spec.SetField(reviewevent.FieldNewDifficulty, field.TypeFloat64, value)
		_node.NewDifficulty = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(reviewevent.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (_c *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
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
func (_c *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
