// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parolabs/parola/ent/itemprogress"
)

// ItemProgressCreate is the builder for creating a ItemProgress entity.
type ItemProgressCreate struct {
	config
	mutation *ItemProgressMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemProgressCreate) SetItemID(v string) *ItemProgressCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ItemProgressCreate) SetLearnerID(v string) *ItemProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ItemProgressCreate) SetKind(v string) *ItemProgressCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetScheduler sets the "scheduler" field.
func (_c *ItemProgressCreate) SetScheduler(v string) *ItemProgressCreate {
	_c.mutation.SetScheduler(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *ItemProgressCreate) SetTerm(v string) *ItemProgressCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *ItemProgressCreate) SetTranslation(v string) *ItemProgressCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableTranslation(v *string) *ItemProgressCreate {
	if v != nil {
		_c.SetTranslation(*v)
	}
	return _c
}

// SetStability sets the "stability" field.
func (_c *ItemProgressCreate) SetStability(v float64) *ItemProgressCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableStability(v *float64) *ItemProgressCreate {
	if v != nil {
		_c.SetStability(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemProgressCreate) SetDifficulty(v float64) *ItemProgressCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableDifficulty(v *float64) *ItemProgressCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetEase sets the "ease" field.
func (_c *ItemProgressCreate) SetEase(v float64) *ItemProgressCreate {
	_c.mutation.SetEase(v)
	return _c
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableEase(v *float64) *ItemProgressCreate {
	if v != nil {
		_c.SetEase(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ItemProgressCreate) SetRepetitions(v int) *ItemProgressCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableRepetitions(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *ItemProgressCreate) SetLapses(v int) *ItemProgressCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableLapses(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ItemProgressCreate) SetIntervalDays(v int) *ItemProgressCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableIntervalDays(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ItemProgressCreate) SetState(v string) *ItemProgressCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableState(v *string) *ItemProgressCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *ItemProgressCreate) SetStepIndex(v int) *ItemProgressCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableStepIndex(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetStepIndex(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ItemProgressCreate) SetDueAt(v time.Time) *ItemProgressCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableDueAt(v *time.Time) *ItemProgressCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ItemProgressCreate) SetLastReviewedAt(v time.Time) *ItemProgressCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableLastReviewedAt(v *time.Time) *ItemProgressCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ItemProgressCreate) SetCreatedAt(v time.Time) *ItemProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableCreatedAt(v *time.Time) *ItemProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemProgressCreate) SetUpdatedAt(v time.Time) *ItemProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableUpdatedAt(v *time.Time) *ItemProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ItemProgressMutation object of the builder.
func (_c *ItemProgressCreate) Mutation() *ItemProgressMutation {
	return _c.mutation
}

// Save creates the ItemProgress in the database.
func (_c *ItemProgressCreate) Save(ctx context.Context) (*ItemProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemProgressCreate) SaveX(ctx context.Context) *ItemProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemProgressCreate) defaults() {
	if _, ok := _c.mutation.Stability(); !ok {
		v := itemprogress.DefaultStability
		_c.mutation.SetStability(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := itemprogress.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Ease(); !ok {
		v := itemprogress.DefaultEase
		_c.mutation.SetEase(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := itemprogress.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := itemprogress.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := itemprogress.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := itemprogress.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		v := itemprogress.DefaultStepIndex
		_c.mutation.SetStepIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := itemprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := itemprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemProgressCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemProgress.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := itemprogress.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ItemProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := itemprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ItemProgress.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := itemprogress.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scheduler(); !ok {
		return &ValidationError{Name: "scheduler", err: errors.New(`ent: missing required field "ItemProgress.scheduler"`)}
	}
	if v, ok := _c.mutation.Scheduler(); ok {
		if err := itemprogress.SchedulerValidator(v); err != nil {
			return &ValidationError{Name: "scheduler", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.scheduler": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "ItemProgress.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := itemprogress.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "ItemProgress.stability"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ItemProgress.difficulty"`)}
	}
	if _, ok := _c.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "ItemProgress.ease"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ItemProgress.repetitions"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "ItemProgress.lapses"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ItemProgress.interval_days"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ItemProgress.state"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "ItemProgress.step_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ItemProgress.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ItemProgress.updated_at"`)}
	}
	return nil
}

func (_c *ItemProgressCreate) sqlSave(ctx context.Context) (*ItemProgress, error) {
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

func (_c *ItemProgressCreate) createSpec() (*ItemProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemprogress.Table, sqlgraph.NewFieldSpec(itemprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(itemprogress.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(itemprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(itemprogress.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Scheduler(); ok {
		_spec.SetField(itemprogress.FieldScheduler, field.TypeString, value)
		_node.Scheduler = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(itemprogress.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(itemprogress.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(itemprogress.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(itemprogress.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Ease(); ok {
		_spec.SetField(itemprogress.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(itemprogress.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(itemprogress.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(itemprogress.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(itemprogress.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(itemprogress.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(itemprogress.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(itemprogress.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(itemprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(itemprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ItemProgressCreateBulk is the builder for creating many ItemProgress entities in bulk.
type ItemProgressCreateBulk struct {
	config
	err      error
	builders []*ItemProgressCreate
}

// Save creates the ItemProgress entities in the database.
func (_c *ItemProgressCreateBulk) Save(ctx context.Context) ([]*ItemProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemProgressMutation)
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
func (_c *ItemProgressCreateBulk) SaveX(ctx context.Context) []*ItemProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
