// Code generated by ent, DO NOT EDIT.

package importevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/parolabs/parola/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldBatchID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldLearnerID, v))
}

// DeckName applies equality check predicate on the "deck_name" field. It's identical to DeckNameEQ.
func DeckName(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldDeckName, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldSourceFile, v))
}

// ImportedCount applies equality check predicate on the "imported_count" field. It's identical to ImportedCountEQ.
func ImportedCount(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldImportedCount, v))
}

// SkippedCount applies equality check predicate on the "skipped_count" field. It's identical to SkippedCountEQ.
func SkippedCount(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldSkippedCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContainsFold(FieldBatchID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// DeckNameEQ applies the EQ predicate on the "deck_name" field.
func DeckNameEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldDeckName, v))
}

// DeckNameNEQ applies the NEQ predicate on the "deck_name" field.
func DeckNameNEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldDeckName, v))
}

// DeckNameIn applies the In predicate on the "deck_name" field.
func DeckNameIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldDeckName, vs...))
}

// DeckNameNotIn applies the NotIn predicate on the "deck_name" field.
func DeckNameNotIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldDeckName, vs...))
}

// DeckNameGT applies the GT predicate on the "deck_name" field.
func DeckNameGT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldDeckName, v))
}

// DeckNameGTE applies the GTE predicate on the "deck_name" field.
func DeckNameGTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldDeckName, v))
}

// DeckNameLT applies the LT predicate on the "deck_name" field.
func DeckNameLT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldDeckName, v))
}

// DeckNameLTE applies the LTE predicate on the "deck_name" field.
func DeckNameLTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldDeckName, v))
}

// DeckNameContains applies the Contains predicate on the "deck_name" field.
func DeckNameContains(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContains(FieldDeckName, v))
}

// DeckNameHasPrefix applies the HasPrefix predicate on the "deck_name" field.
func DeckNameHasPrefix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasPrefix(FieldDeckName, v))
}

// DeckNameHasSuffix applies the HasSuffix predicate on the "deck_name" field.
func DeckNameHasSuffix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasSuffix(FieldDeckName, v))
}

// DeckNameEqualFold applies the EqualFold predicate on the "deck_name" field.
func DeckNameEqualFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEqualFold(FieldDeckName, v))
}

// DeckNameContainsFold applies the ContainsFold predicate on the "deck_name" field.
func DeckNameContainsFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContainsFold(FieldDeckName, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileIsNil applies the IsNil predicate on the "source_file" field.
func SourceFileIsNil() predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIsNull(FieldSourceFile))
}

// SourceFileNotNil applies the NotNil predicate on the "source_file" field.
func SourceFileNotNil() predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotNull(FieldSourceFile))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldContainsFold(FieldSourceFile, v))
}

// ImportedCountEQ applies the EQ predicate on the "imported_count" field.
func ImportedCountEQ(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldImportedCount, v))
}

// ImportedCountNEQ applies the NEQ predicate on the "imported_count" field.
func ImportedCountNEQ(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldImportedCount, v))
}

// ImportedCountIn applies the In predicate on the "imported_count" field.
func ImportedCountIn(vs ...int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldImportedCount, vs...))
}

// ImportedCountNotIn applies the NotIn predicate on the "imported_count" field.
func ImportedCountNotIn(vs ...int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldImportedCount, vs...))
}

// ImportedCountGT applies the GT predicate on the "imported_count" field.
func ImportedCountGT(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldImportedCount, v))
}

// ImportedCountGTE applies the GTE predicate on the "imported_count" field.
func ImportedCountGTE(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldImportedCount, v))
}

// ImportedCountLT applies the LT predicate on the "imported_count" field.
func ImportedCountLT(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldImportedCount, v))
}

// ImportedCountLTE applies the LTE predicate on the "imported_count" field.
func ImportedCountLTE(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldImportedCount, v))
}

// SkippedCountEQ applies the EQ predicate on the "skipped_count" field.
func SkippedCountEQ(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldEQ(FieldSkippedCount, v))
}

// SkippedCountNEQ applies the NEQ predicate on the "skipped_count" field.
func SkippedCountNEQ(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNEQ(FieldSkippedCount, v))
}

// SkippedCountIn applies the In predicate on the "skipped_count" field.
func SkippedCountIn(vs ...int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldIn(FieldSkippedCount, vs...))
}

// SkippedCountNotIn applies the NotIn predicate on the "skipped_count" field.
func SkippedCountNotIn(vs ...int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldNotIn(FieldSkippedCount, vs...))
}

// SkippedCountGT applies the GT predicate on the "skipped_count" field.
func SkippedCountGT(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGT(FieldSkippedCount, v))
}

// SkippedCountGTE applies the GTE predicate on the "skipped_count" field.
func SkippedCountGTE(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldGTE(FieldSkippedCount, v))
}

// SkippedCountLT applies the LT predicate on the "skipped_count" field.
func SkippedCountLT(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLT(FieldSkippedCount, v))
}

// SkippedCountLTE applies the LTE predicate on the "skipped_count" field.
func SkippedCountLTE(v int) predicate.ImportEvent {
	return predicate.ImportEvent(sql.FieldLTE(FieldSkippedCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportEvent) predicate.ImportEvent {
	return predicate.ImportEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportEvent) predicate.ImportEvent {
	return predicate.ImportEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportEvent) predicate.ImportEvent {
	return predicate.ImportEvent(sql.NotPredicates(p))
}
