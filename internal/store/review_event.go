package store

import (
	"context"
	"fmt"

	"github.com/parolabs/parola/ent"
	"github.com/parolabs/parola/ent/reviewevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.OccurredAt).
		SetEntryID(data.EntryID).
		SetItemID(data.ItemID).
		SetLearnerID(data.LearnerID).
		SetKind(data.Kind).
		SetScheduler(data.Scheduler).
		SetRating(data.Rating).
		SetTransition(data.Transition).
		SetPrevIntervalDays(data.PrevIntervalDays).
		SetNewIntervalDays(data.NewIntervalDays).
		SetPrevEase(data.PrevEase).
		SetNewEase(data.NewEase).
		SetPrevStability(data.PrevStability).
		SetNewStability(data.NewStability).
		SetPrevDifficulty(data.PrevDifficulty).
		SetNewDifficulty(data.NewDifficulty).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendImportEvent(ctx context.Context, data ImportEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ImportEvent.Create().
		SetSequence(seqNum).
		SetBatchID(data.BatchID).
		SetLearnerID(data.LearnerID).
		SetDeckName(data.DeckName).
		SetImportedCount(data.ImportedCount).
		SetSkippedCount(data.SkippedCount)

	if data.SourceFile != "" {
		builder = builder.SetSourceFile(data.SourceFile)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save import event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentReviews(ctx context.Context, learnerID string, limit int) ([]ReviewRecord, error) {
	q := r.client.ReviewEvent.Query().
		Where(reviewevent.LearnerID(learnerID)).
		Order(ent.Desc(reviewevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	result := make([]ReviewRecord, len(rows))
	for i, row := range rows {
		result[i] = ReviewRecord{
			Sequence:   row.Sequence,
			ItemID:     row.ItemID,
			Kind:       row.Kind,
			Scheduler:  row.Scheduler,
			Rating:     row.Rating,
			Transition: row.Transition,
			OccurredAt: row.Timestamp,
		}
	}
	return result, nil
}
