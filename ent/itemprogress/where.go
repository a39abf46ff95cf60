// Code generated by ent, DO NOT EDIT.

package itemprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/parolabs/parola/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldItemID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLearnerID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldKind, v))
}

// Scheduler applies equality check predicate on the "scheduler" field. It's identical to SchedulerEQ.
func Scheduler(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldScheduler, v))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldTerm, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldTranslation, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldStability, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldDifficulty, v))
}

// Ease applies equality check predicate on the "ease" field. It's identical to EaseEQ.
func Ease(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldEase, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldRepetitions, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLapses, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldIntervalDays, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldState, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldStepIndex, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldDueAt, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLastReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldItemID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldKind, v))
}

// SchedulerEQ applies the EQ predicate on the "scheduler" field.
func SchedulerEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldScheduler, v))
}

// SchedulerNEQ applies the NEQ predicate on the "scheduler" field.
func SchedulerNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldScheduler, v))
}

// SchedulerIn applies the In predicate on the "scheduler" field.
func SchedulerIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldScheduler, vs...))
}

// SchedulerNotIn applies the NotIn predicate on the "scheduler" field.
func SchedulerNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldScheduler, vs...))
}

// SchedulerGT applies the GT predicate on the "scheduler" field.
func SchedulerGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldScheduler, v))
}

// SchedulerGTE applies the GTE predicate on the "scheduler" field.
func SchedulerGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldScheduler, v))
}

// SchedulerLT applies the LT predicate on the "scheduler" field.
func SchedulerLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldScheduler, v))
}

// SchedulerLTE applies the LTE predicate on the "scheduler" field.
func SchedulerLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldScheduler, v))
}

// SchedulerContains applies the Contains predicate on the "scheduler" field.
func SchedulerContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldScheduler, v))
}

// SchedulerHasPrefix applies the HasPrefix predicate on the "scheduler" field.
func SchedulerHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldScheduler, v))
}

// SchedulerHasSuffix applies the HasSuffix predicate on the "scheduler" field.
func SchedulerHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldScheduler, v))
}

// SchedulerEqualFold applies the EqualFold predicate on the "scheduler" field.
func SchedulerEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldScheduler, v))
}

// SchedulerContainsFold applies the ContainsFold predicate on the "scheduler" field.
func SchedulerContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldScheduler, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldTerm, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationIsNil applies the IsNil predicate on the "translation" field.
func TranslationIsNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIsNull(FieldTranslation))
}

// TranslationNotNil applies the NotNil predicate on the "translation" field.
func TranslationNotNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotNull(FieldTranslation))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldTranslation, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldStability, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldDifficulty, v))
}

// EaseEQ applies the EQ predicate on the "ease" field.
func EaseEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldEase, v))
}

// EaseNEQ applies the NEQ predicate on the "ease" field.
func EaseNEQ(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldEase, v))
}

// EaseIn applies the In predicate on the "ease" field.
func EaseIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldEase, vs...))
}

// EaseNotIn applies the NotIn predicate on the "ease" field.
func EaseNotIn(vs ...float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldEase, vs...))
}

// EaseGT applies the GT predicate on the "ease" field.
func EaseGT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldEase, v))
}

// EaseGTE applies the GTE predicate on the "ease" field.
func EaseGTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldEase, v))
}

// EaseLT applies the LT predicate on the "ease" field.
func EaseLT(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldEase, v))
}

// EaseLTE applies the LTE predicate on the "ease" field.
func EaseLTE(v float64) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldEase, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldRepetitions, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLapses, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldIntervalDays, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldContainsFold(FieldState, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldStepIndex, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldDueAt, v))
}

// DueAtIsNil applies the IsNil predicate on the "due_at" field.
func DueAtIsNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIsNull(FieldDueAt))
}

// DueAtNotNil applies the NotNil predicate on the "due_at" field.
func DueAtNotNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotNull(FieldDueAt))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotNull(FieldLastReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ItemProgress {
	return predicate.ItemProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemProgress) predicate.ItemProgress {
	return predicate.ItemProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemProgress) predicate.ItemProgress {
	return predicate.ItemProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemProgress) predicate.ItemProgress {
	return predicate.ItemProgress(sql.NotPredicates(p))
}
