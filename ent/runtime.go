// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/parolabs/parola/ent/importevent"
	"github.com/parolabs/parola/ent/itemprogress"
	"github.com/parolabs/parola/ent/reviewevent"
	"github.com/parolabs/parola/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importeventMixin := schema.ImportEvent{}.Mixin()
	importeventMixinFields0 := importeventMixin[0].Fields()
	_ = importeventMixinFields0
	importeventFields := schema.ImportEvent{}.Fields()
	_ = importeventFields
	// importeventDescTimestamp is the schema descriptor for timestamp field.
	importeventDescTimestamp := importeventMixinFields0[1].Descriptor()
	// importevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	importevent.DefaultTimestamp = importeventDescTimestamp.Default.(func() time.Time)
	// importeventDescBatchID is the schema descriptor for batch_id field.
	importeventDescBatchID := importeventFields[0].Descriptor()
	// importevent.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	importevent.BatchIDValidator = importeventDescBatchID.Validators[0].(func(string) error)
	// importeventDescLearnerID is the schema descriptor for learner_id field.
	importeventDescLearnerID := importeventFields[1].Descriptor()
	// importevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	importevent.LearnerIDValidator = importeventDescLearnerID.Validators[0].(func(string) error)
	// importeventDescDeckName is the schema descriptor for deck_name field.
	importeventDescDeckName := importeventFields[2].Descriptor()
	// importevent.DeckNameValidator is a validator for the "deck_name" field. It is called by the builders before save.
	importevent.DeckNameValidator = importeventDescDeckName.Validators[0].(func(string) error)
	itemprogressFields := schema.ItemProgress{}.Fields()
	_ = itemprogressFields
	// itemprogressDescItemID is the schema descriptor for item_id field.
	itemprogressDescItemID := itemprogressFields[0].Descriptor()
	// itemprogress.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	itemprogress.ItemIDValidator = itemprogressDescItemID.Validators[0].(func(string) error)
	// itemprogressDescLearnerID is the schema descriptor for learner_id field.
	itemprogressDescLearnerID := itemprogressFields[1].Descriptor()
	// itemprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	itemprogress.LearnerIDValidator = itemprogressDescLearnerID.Validators[0].(func(string) error)
	// itemprogressDescKind is the schema descriptor for kind field.
	itemprogressDescKind := itemprogressFields[2].Descriptor()
	// itemprogress.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	itemprogress.KindValidator = itemprogressDescKind.Validators[0].(func(string) error)
	// itemprogressDescScheduler is the schema descriptor for scheduler field.
	itemprogressDescScheduler := itemprogressFields[3].Descriptor()
	// itemprogress.SchedulerValidator is a validator for the "scheduler" field. It is called by the builders before save.
	itemprogress.SchedulerValidator = itemprogressDescScheduler.Validators[0].(func(string) error)
	// itemprogressDescTerm is the schema descriptor for term field.
	itemprogressDescTerm := itemprogressFields[4].Descriptor()
	// itemprogress.TermValidator is a validator for the "term" field. It is called by the builders before save.
	itemprogress.TermValidator = itemprogressDescTerm.Validators[0].(func(string) error)
	// itemprogressDescStability is the schema descriptor for stability field.
	itemprogressDescStability := itemprogressFields[6].Descriptor()
	// itemprogress.DefaultStability holds the default value on creation for the stability field.
	itemprogress.DefaultStability = itemprogressDescStability.Default.(float64)
	// itemprogressDescDifficulty is the schema descriptor for difficulty field.
	itemprogressDescDifficulty := itemprogressFields[7].Descriptor()
	// itemprogress.DefaultDifficulty holds the default value on creation for the difficulty field.
	itemprogress.DefaultDifficulty = itemprogressDescDifficulty.Default.(float64)
	// itemprogressDescEase is the schema descriptor for ease field.
	itemprogressDescEase := itemprogressFields[8].Descriptor()
	// itemprogress.DefaultEase holds the default value on creation for the ease field.
	itemprogress.DefaultEase = itemprogressDescEase.Default.(float64)
	// itemprogressDescRepetitions is the schema descriptor for repetitions field.
	itemprogressDescRepetitions := itemprogressFields[9].Descriptor()
	// itemprogress.DefaultRepetitions holds the default value on creation for the repetitions field.
	itemprogress.DefaultRepetitions = itemprogressDescRepetitions.Default.(int)
	// itemprogressDescLapses is the schema descriptor for lapses field.
	itemprogressDescLapses := itemprogressFields[10].Descriptor()
	// itemprogress.DefaultLapses holds the default value on creation for the lapses field.
	itemprogress.DefaultLapses = itemprogressDescLapses.Default.(int)
	// itemprogressDescIntervalDays is the schema descriptor for interval_days field.
	itemprogressDescIntervalDays := itemprogressFields[11].Descriptor()
	// itemprogress.DefaultIntervalDays holds the default value on creation for the interval_days field.
	itemprogress.DefaultIntervalDays = itemprogressDescIntervalDays.Default.(int)
	// itemprogressDescState is the schema descriptor for state field.
	itemprogressDescState := itemprogressFields[12].Descriptor()
	// itemprogress.DefaultState holds the default value on creation for the state field.
	itemprogress.DefaultState = itemprogressDescState.Default.(string)
	// itemprogressDescStepIndex is the schema descriptor for step_index field.
	itemprogressDescStepIndex := itemprogressFields[13].Descriptor()
	// itemprogress.DefaultStepIndex holds the default value on creation for the step_index field.
	itemprogress.DefaultStepIndex = itemprogressDescStepIndex.Default.(int)
	// itemprogressDescCreatedAt is the schema descriptor for created_at field.
	itemprogressDescCreatedAt := itemprogressFields[16].Descriptor()
	// itemprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	itemprogress.DefaultCreatedAt = itemprogressDescCreatedAt.Default.(func() time.Time)
	// itemprogressDescUpdatedAt is the schema descriptor for updated_at field.
	itemprogressDescUpdatedAt := itemprogressFields[17].Descriptor()
	// itemprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itemprogress.DefaultUpdatedAt = itemprogressDescUpdatedAt.Default.(func() time.Time)
	// itemprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itemprogress.UpdateDefaultUpdatedAt = itemprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescEntryID is the schema descriptor for entry_id field.
	revieweventDescEntryID := revieweventFields[0].Descriptor()
	// reviewevent.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	reviewevent.EntryIDValidator = revieweventDescEntryID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[1].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescLearnerID is the schema descriptor for learner_id field.
	revieweventDescLearnerID := revieweventFields[2].Descriptor()
	// reviewevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewevent.LearnerIDValidator = revieweventDescLearnerID.Validators[0].(func(string) error)
	// revieweventDescKind is the schema descriptor for kind field.
	revieweventDescKind := revieweventFields[3].Descriptor()
	// reviewevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	reviewevent.KindValidator = revieweventDescKind.Validators[0].(func(string) error)
	// revieweventDescScheduler is the schema descriptor for scheduler field.
	revieweventDescScheduler := revieweventFields[4].Descriptor()
	// reviewevent.SchedulerValidator is a validator for the "scheduler" field. It is called by the builders before save.
	reviewevent.SchedulerValidator = revieweventDescScheduler.Validators[0].(func(string) error)
	// revieweventDescTransition is the schema descriptor for transition field.
	revieweventDescTransition := revieweventFields[6].Descriptor()
	// reviewevent.TransitionValidator is a validator for the "transition" field. It is called by the builders before save.
	reviewevent.TransitionValidator = revieweventDescTransition.Validators[0].(func(string) error)
}
