package store

import (
	"context"
	"fmt"
	"time"

	"github.com/parolabs/parola/ent"
	"github.com/parolabs/parola/ent/itemprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *progressRepo) Create(ctx context.Context, p ProgressData) error {
	builder := r.client.ItemProgress.Create().
		SetItemID(p.ItemID).
		SetLearnerID(p.LearnerID).
		SetKind(p.Kind).
		SetScheduler(p.Scheduler).
		SetTerm(p.Term).
		SetStability(p.Stability).
		SetDifficulty(p.Difficulty).
		SetEase(p.Ease).
		SetRepetitions(p.Repetitions).
		SetLapses(p.Lapses).
		SetIntervalDays(p.IntervalDays).
		SetStepIndex(p.StepIndex).
		SetNillableDueAt(p.DueAt).
		SetNillableLastReviewedAt(p.LastReviewedAt)

	if p.State != "" {
		builder = builder.SetState(p.State)
	}
	if p.Translation != "" {
		builder = builder.SetTranslation(p.Translation)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, learnerID, itemID string) (*ProgressData, error) {
	row, err := r.client.ItemProgress.Query().
		Where(
			itemprogress.LearnerID(learnerID),
			itemprogress.ItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	data := entToProgress(row)
	return &data, nil
}

func (r *progressRepo) ExistsTerm(ctx context.Context, learnerID, term, kind string) (bool, error) {
	exists, err := r.client.ItemProgress.Query().
		Where(
			itemprogress.LearnerID(learnerID),
			itemprogress.Term(term),
			itemprogress.Kind(kind),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check term: %w", err)
	}
	return exists, nil
}

// ApplyReview runs the progress update and the history append in one
// transaction. The row update serializes concurrent reviews of the same
// item at the database level.
func (r *progressRepo) ApplyReview(ctx context.Context, p ProgressData, e ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	n, err := tx.ItemProgress.Update().
		Where(
			itemprogress.LearnerID(p.LearnerID),
			itemprogress.ItemID(p.ItemID),
		).
		SetStability(p.Stability).
		SetDifficulty(p.Difficulty).
		SetEase(p.Ease).
		SetRepetitions(p.Repetitions).
		SetLapses(p.Lapses).
		SetIntervalDays(p.IntervalDays).
		SetState(p.State).
		SetStepIndex(p.StepIndex).
		SetNillableDueAt(p.DueAt).
		SetNillableLastReviewedAt(p.LastReviewedAt).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("update progress: %w", err))
	}
	if n == 0 {
		return rollback(tx, fmt.Errorf("update progress: item %q not tracked for learner %q", p.ItemID, p.LearnerID))
	}

	_, err = tx.ReviewEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(e.OccurredAt).
		SetEntryID(e.EntryID).
		SetItemID(e.ItemID).
		SetLearnerID(e.LearnerID).
		SetKind(e.Kind).
		SetScheduler(e.Scheduler).
		SetRating(e.Rating).
		SetTransition(e.Transition).
		SetPrevIntervalDays(e.PrevIntervalDays).
		SetNewIntervalDays(e.NewIntervalDays).
		SetPrevEase(e.PrevEase).
		SetNewEase(e.NewEase).
		SetPrevStability(e.PrevStability).
		SetNewStability(e.NewStability).
		SetPrevDifficulty(e.PrevDifficulty).
		SetNewDifficulty(e.NewDifficulty).
		SetLatencyMs(e.LatencyMs).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("append review event: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit review: %w", err)
	}
	return nil
}

func (r *progressRepo) ListDue(ctx context.Context, learnerID string, now time.Time) ([]ProgressData, error) {
	rows, err := r.client.ItemProgress.Query().
		Where(
			itemprogress.LearnerID(learnerID),
			itemprogress.Or(
				itemprogress.DueAtLTE(now),
				itemprogress.DueAtIsNil(),
			),
		).
		Order(ent.Asc(itemprogress.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due items: %w", err)
	}

	result := make([]ProgressData, len(rows))
	for i, row := range rows {
		result[i] = entToProgress(row)
	}
	return result, nil
}

func (r *progressRepo) CountByState(ctx context.Context, learnerID string) ([]StateCount, error) {
	var rows []struct {
		Kind  string `json:"kind"`
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := r.client.ItemProgress.Query().
		Where(itemprogress.LearnerID(learnerID)).
		GroupBy(itemprogress.FieldKind, itemprogress.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count by state: %w", err)
	}

	result := make([]StateCount, len(rows))
	for i, row := range rows {
		result[i] = StateCount{Kind: row.Kind, State: row.State, Count: row.Count}
	}
	return result, nil
}

func (r *progressRepo) DeleteAll(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.ItemProgress.Delete().
		Where(itemprogress.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete progress: %w", err)
	}
	return n, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}

func entToProgress(row *ent.ItemProgress) ProgressData {
	return ProgressData{
		ItemID:         row.ItemID,
		LearnerID:      row.LearnerID,
		Kind:           row.Kind,
		Scheduler:      row.Scheduler,
		Term:           row.Term,
		Translation:    row.Translation,
		Stability:      row.Stability,
		Difficulty:     row.Difficulty,
		Ease:           row.Ease,
		Repetitions:    row.Repetitions,
		Lapses:         row.Lapses,
		IntervalDays:   row.IntervalDays,
		State:          row.State,
		StepIndex:      row.StepIndex,
		DueAt:          row.DueAt,
		LastReviewedAt: row.LastReviewedAt,
	}
}
