package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/parolabs/parola/internal/scheduler"
	"github.com/parolabs/parola/internal/store"
)

// Service wires the pure dispatcher to the store: it loads the stored
// progress record, runs the dispatcher, and persists the updated record
// together with its history entry in one transaction.
type Service struct {
	dispatcher *Dispatcher
	progress   store.ProgressRepo
	log        zerolog.Logger
}

// NewService creates a review service.
func NewService(dispatcher *Dispatcher, progress store.ProgressRepo, log zerolog.Logger) *Service {
	return &Service{dispatcher: dispatcher, progress: progress, log: log}
}

// AddItem creates a brand-new item owned by the given scheduler. Step
// items get their ease factor seeded immediately so the stored shape
// always matches the scheduler kind.
func (s *Service) AddItem(ctx context.Context, learnerID string, kind Kind, sched SchedulerKind, term, translation string) (Progress, error) {
	p := Progress{
		ItemID:      uuid.NewString(),
		LearnerID:   learnerID,
		Kind:        kind,
		Scheduler:   sched,
		Term:        term,
		Translation: translation,
		State:       "new",
	}
	if sched == SchedulerSteps {
		p.Ease = scheduler.StartEase
	}

	if err := s.progress.Create(ctx, toStoreProgress(p)); err != nil {
		return Progress{}, err
	}
	s.log.Debug().
		Str("item_id", p.ItemID).
		Str("kind", string(kind)).
		Str("scheduler", string(sched)).
		Msg("item added")
	return p, nil
}

// Submit processes one review event for one item and persists the
// outcome. occurredAt must be supplied; the CLI layer injects the
// current instant for live reviews.
func (s *Service) Submit(ctx context.Context, learnerID, itemID string, rating scheduler.Rating, occurredAt time.Time, latencyMs int) (Progress, HistoryEntry, error) {
	row, err := s.progress.Get(ctx, learnerID, itemID)
	if err != nil {
		return Progress{}, HistoryEntry{}, err
	}
	if row == nil {
		return Progress{}, HistoryEntry{}, fmt.Errorf("item %q not tracked for learner %q", itemID, learnerID)
	}

	p := fromStoreProgress(*row)
	updated, entry, err := s.dispatcher.Process(p, rating, occurredAt, latencyMs)
	if err != nil {
		return Progress{}, HistoryEntry{}, err
	}

	if err := s.progress.ApplyReview(ctx, toStoreProgress(updated), toStoreEvent(entry)); err != nil {
		return Progress{}, HistoryEntry{}, err
	}

	s.log.Debug().
		Str("item_id", itemID).
		Str("rating", rating.String()).
		Str("transition", entry.Transition).
		Int("interval_days", updated.IntervalDays).
		Msg("review processed")
	return updated, entry, nil
}

func fromStoreProgress(d store.ProgressData) Progress {
	return Progress{
		ItemID:         d.ItemID,
		LearnerID:      d.LearnerID,
		Kind:           Kind(d.Kind),
		Scheduler:      SchedulerKind(d.Scheduler),
		Term:           d.Term,
		Translation:    d.Translation,
		Stability:      d.Stability,
		Difficulty:     d.Difficulty,
		Ease:           d.Ease,
		Repetitions:    d.Repetitions,
		Lapses:         d.Lapses,
		IntervalDays:   d.IntervalDays,
		State:          d.State,
		StepIndex:      d.StepIndex,
		DueAt:          d.DueAt,
		LastReviewedAt: d.LastReviewedAt,
	}
}

func toStoreProgress(p Progress) store.ProgressData {
	return store.ProgressData{
		ItemID:         p.ItemID,
		LearnerID:      p.LearnerID,
		Kind:           string(p.Kind),
		Scheduler:      string(p.Scheduler),
		Term:           p.Term,
		Translation:    p.Translation,
		Stability:      p.Stability,
		Difficulty:     p.Difficulty,
		Ease:           p.Ease,
		Repetitions:    p.Repetitions,
		Lapses:         p.Lapses,
		IntervalDays:   p.IntervalDays,
		State:          p.State,
		StepIndex:      p.StepIndex,
		DueAt:          p.DueAt,
		LastReviewedAt: p.LastReviewedAt,
	}
}

func toStoreEvent(e HistoryEntry) store.ReviewEventData {
	return store.ReviewEventData{
		EntryID:          e.EntryID,
		ItemID:           e.ItemID,
		LearnerID:        e.LearnerID,
		Kind:             string(e.Kind),
		Scheduler:        string(e.Scheduler),
		Rating:           int(e.Rating),
		Transition:       e.Transition,
		LatencyMs:        e.LatencyMs,
		OccurredAt:       e.OccurredAt,
		PrevIntervalDays: e.PrevIntervalDays,
		NewIntervalDays:  e.NewIntervalDays,
		PrevEase:         e.PrevEase,
		NewEase:          e.NewEase,
		PrevStability:    e.PrevStability,
		NewStability:     e.NewStability,
		PrevDifficulty:   e.PrevDifficulty,
		NewDifficulty:    e.NewDifficulty,
	}
}
