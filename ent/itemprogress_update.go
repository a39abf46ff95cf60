// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/parolabs/parola/ent/itemprogress"
	"github.com/parolabs/parola/ent/predicate"
)

// ItemProgressUpdate is the builder for updating ItemProgress entities.
type ItemProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ItemProgressMutation
}

// Where appends a list predicates to the ItemProgressUpdate builder.
func (_u *ItemProgressUpdate) Where(ps ...predicate.ItemProgress) *ItemProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ItemProgressUpdate) SetKind(v string) *ItemProgressUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableKind(v *string) *ItemProgressUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *ItemProgressUpdate) SetTerm(v string) *ItemProgressUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableTerm(v *string) *ItemProgressUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *ItemProgressUpdate) SetTranslation(v string) *ItemProgressUpdate {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableTranslation(v *string) *ItemProgressUpdate {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// ClearTranslation clears the value of the "translation" field.
func (_u *ItemProgressUpdate) ClearTranslation() *ItemProgressUpdate {
	_u.mutation.ClearTranslation()
	return _u
}

// SetStability sets the "stability" field.
func (_u *ItemProgressUpdate) SetStability(v float64) *ItemProgressUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableStability(v *float64) *ItemProgressUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ItemProgressUpdate) AddStability(v float64) *ItemProgressUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemProgressUpdate) SetDifficulty(v float64) *ItemProgressUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableDifficulty(v *float64) *ItemProgressUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemProgressUpdate) AddDifficulty(v float64) *ItemProgressUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *ItemProgressUpdate) SetEase(v float64) *ItemProgressUpdate {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableEase(v *float64) *ItemProgressUpdate {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ItemProgressUpdate) AddEase(v float64) *ItemProgressUpdate {
	_u.mutation.AddEase(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ItemProgressUpdate) SetRepetitions(v int) *ItemProgressUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableRepetitions(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ItemProgressUpdate) AddRepetitions(v int) *ItemProgressUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ItemProgressUpdate) SetLapses(v int) *ItemProgressUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableLapses(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ItemProgressUpdate) AddLapses(v int) *ItemProgressUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ItemProgressUpdate) SetIntervalDays(v int) *ItemProgressUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableIntervalDays(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ItemProgressUpdate) AddIntervalDays(v int) *ItemProgressUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ItemProgressUpdate) SetState(v string) *ItemProgressUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableState(v *string) *ItemProgressUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ItemProgressUpdate) SetStepIndex(v int) *ItemProgressUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableStepIndex(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ItemProgressUpdate) AddStepIndex(v int) *ItemProgressUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ItemProgressUpdate) SetDueAt(v time.Time) *ItemProgressUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableDueAt(v *time.Time) *ItemProgressUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *ItemProgressUpdate) ClearDueAt() *ItemProgressUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ItemProgressUpdate) SetLastReviewedAt(v time.Time) *ItemProgressUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableLastReviewedAt(v *time.Time) *ItemProgressUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ItemProgressUpdate) ClearLastReviewedAt() *ItemProgressUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemProgressUpdate) SetUpdatedAt(v time.Time) *ItemProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemProgressMutation object of the builder.
func (_u *ItemProgressUpdate) Mutation() *ItemProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itemprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemProgressUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := itemprogress.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := itemprogress.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.term": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemprogress.Table, itemprogress.Columns, sqlgraph.NewFieldSpec(itemprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(itemprogress.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(itemprogress.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(itemprogress.FieldTranslation, field.TypeString, value)
	}
	if _u.mutation.TranslationCleared() {
		_spec.ClearField(itemprogress.FieldTranslation, field.TypeString)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(itemprogress.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(itemprogress.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(itemprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(itemprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(itemprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(itemprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(itemprogress.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(itemprogress.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(itemprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(itemprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(itemprogress.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(itemprogress.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(itemprogress.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(itemprogress.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(itemprogress.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(itemprogress.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(itemprogress.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itemprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemProgressUpdateOne is the builder for updating a single ItemProgress entity.
type ItemProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemProgressMutation
}

// SetKind sets the "kind" field.
func (_u *ItemProgressUpdateOne) SetKind(v string) *ItemProgressUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableKind(v *string) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *ItemProgressUpdateOne) SetTerm(v string) *ItemProgressUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableTerm(v *string) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *ItemProgressUpdateOne) SetTranslation(v string) *ItemProgressUpdateOne {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableTranslation(v *string) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// ClearTranslation clears the value of the "translation" field.
func (_u *ItemProgressUpdateOne) ClearTranslation() *ItemProgressUpdateOne {
	_u.mutation.ClearTranslation()
	return _u
}

// SetStability sets the "stability" field.
func (_u *ItemProgressUpdateOne) SetStability(v float64) *ItemProgressUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableStability(v *float64) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ItemProgressUpdateOne) AddStability(v float64) *ItemProgressUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemProgressUpdateOne) SetDifficulty(v float64) *ItemProgressUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableDifficulty(v *float64) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemProgressUpdateOne) AddDifficulty(v float64) *ItemProgressUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *ItemProgressUpdateOne) SetEase(v float64) *ItemProgressUpdateOne {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableEase(v *float64) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ItemProgressUpdateOne) AddEase(v float64) *ItemProgressUpdateOne {
	_u.mutation.AddEase(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ItemProgressUpdateOne) SetRepetitions(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableRepetitions(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ItemProgressUpdateOne) AddRepetitions(v int) *ItemProgressUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ItemProgressUpdateOne) SetLapses(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableLapses(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ItemProgressUpdateOne) AddLapses(v int) *ItemProgressUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ItemProgressUpdateOne) SetIntervalDays(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableIntervalDays(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ItemProgressUpdateOne) AddIntervalDays(v int) *ItemProgressUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ItemProgressUpdateOne) SetState(v string) *ItemProgressUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableState(v *string) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ItemProgressUpdateOne) SetStepIndex(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableStepIndex(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ItemProgressUpdateOne) AddStepIndex(v int) *ItemProgressUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ItemProgressUpdateOne) SetDueAt(v time.Time) *ItemProgressUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableDueAt(v *time.Time) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *ItemProgressUpdateOne) ClearDueAt() *ItemProgressUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ItemProgressUpdateOne) SetLastReviewedAt(v time.Time) *ItemProgressUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ItemProgressUpdateOne) ClearLastReviewedAt() *ItemProgressUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemProgressUpdateOne) SetUpdatedAt(v time.Time) *ItemProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemProgressMutation object of the builder.
func (_u *ItemProgressUpdateOne) Mutation() *ItemProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemProgressUpdate builder.
func (_u *ItemProgressUpdateOne) Where(ps ...predicate.ItemProgress) *ItemProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemProgressUpdateOne) Select(field string, fields ...string) *ItemProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemProgress entity.
func (_u *ItemProgressUpdateOne) Save(ctx context.Context) (*ItemProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemProgressUpdateOne) SaveX(ctx context.Context) *ItemProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itemprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := itemprogress.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Term(); ok {
		if err := itemprogress.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.term": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemProgressUpdateOne) sqlSave(ctx context.Context) (_node *ItemProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemprogress.Table, itemprogress.Columns, sqlgraph.NewFieldSpec(itemprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemprogress.FieldID)
		for _, f := range fields {
			if !itemprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(itemprogress.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(itemprogress.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(itemprogress.FieldTranslation, field.TypeString, value)
	}
	if _u.mutation.TranslationCleared() {
		_spec.ClearField(itemprogress.FieldTranslation, field.TypeString)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(itemprogress.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(itemprogress.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(itemprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(itemprogress.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(itemprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(itemprogress.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(itemprogress.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(itemprogress.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(itemprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(itemprogress.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(itemprogress.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(itemprogress.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(itemprogress.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(itemprogress.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(itemprogress.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(itemprogress.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(itemprogress.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itemprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ItemProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
