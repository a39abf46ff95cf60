package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parolabs/parola/internal/scheduler"
)

// Failure thresholds for the lapse counter differ between the two
// schedulers; both are preserved as observed in production data rather
// than unified.
const (
	adaptiveLapseThreshold = scheduler.RatingHard
	stepsLapseThreshold    = scheduler.RatingGood
)

// Dispatcher applies one review event to one progress record. It holds
// no mutable state and performs no I/O; persistence of the returned
// record and history entry is the caller's job (see Service).
type Dispatcher struct {
	adaptive *scheduler.Adaptive
	steps    *scheduler.Steps
}

// NewDispatcher creates a dispatcher over the two configured schedulers.
func NewDispatcher(adaptive *scheduler.Adaptive, steps *scheduler.Steps) *Dispatcher {
	return &Dispatcher{adaptive: adaptive, steps: steps}
}

// Process routes the review to the scheduler that owns the item and
// returns the updated record plus its history entry. The input record is
// not mutated; on error nothing is changed at all.
//
// Process is deliberately not idempotent: submitting the same review
// twice advances counters twice. Callers must submit at most once per
// learner action and serialize writes per item.
func (d *Dispatcher) Process(p Progress, rating scheduler.Rating, occurredAt time.Time, latencyMs int) (Progress, HistoryEntry, error) {
	if !rating.Valid() {
		return Progress{}, HistoryEntry{}, scheduler.ErrInvalidRating
	}
	if occurredAt.IsZero() {
		return Progress{}, HistoryEntry{}, ErrMissingTimestamp
	}
	occurredAt = occurredAt.UTC()

	entry := HistoryEntry{
		EntryID:          uuid.NewString(),
		ItemID:           p.ItemID,
		LearnerID:        p.LearnerID,
		Kind:             p.Kind,
		Scheduler:        p.Scheduler,
		Rating:           rating,
		LatencyMs:        latencyMs,
		OccurredAt:       occurredAt,
		PrevIntervalDays: p.IntervalDays,
		PrevEase:         p.Ease,
		PrevStability:    p.Stability,
		PrevDifficulty:   p.Difficulty,
	}
	before := stateLabel(p)

	switch p.Scheduler {
	case SchedulerAdaptive:
		st, err := adaptiveState(&p)
		if err != nil {
			return Progress{}, HistoryEntry{}, err
		}
		out, err := d.adaptive.Review(st, rating, lastReviewed(&p), occurredAt)
		if err != nil {
			return Progress{}, HistoryEntry{}, err
		}
		p.Stability = out.Stability
		p.Difficulty = out.Difficulty
		p.IntervalDays = out.IntervalDays
		p.State = string(out.State)
		due := out.DueAt
		p.DueAt = &due
		if rating <= adaptiveLapseThreshold {
			p.Lapses++
		}

	case SchedulerSteps:
		st, err := stepState(&p)
		if err != nil {
			return Progress{}, HistoryEntry{}, err
		}
		out, err := d.steps.Review(st, rating, occurredAt)
		if err != nil {
			return Progress{}, HistoryEntry{}, err
		}
		p.Ease = out.Ease
		p.StepIndex = out.StepIndex
		p.IntervalDays = out.IntervalDays
		p.State = string(out.Phase)
		due := out.DueAt
		p.DueAt = &due
		if rating <= stepsLapseThreshold {
			p.Lapses++
		}

	default:
		return Progress{}, HistoryEntry{}, fmt.Errorf("%w: %q on item %q", ErrUnknownScheduler, p.Scheduler, p.ItemID)
	}

	p.Repetitions++
	at := occurredAt
	p.LastReviewedAt = &at

	entry.Transition = before + "→" + stateLabel(p)
	entry.NewIntervalDays = p.IntervalDays
	entry.NewEase = p.Ease
	entry.NewStability = p.Stability
	entry.NewDifficulty = p.Difficulty
	return p, entry, nil
}

func stateLabel(p Progress) string {
	if p.State == "" {
		return "new"
	}
	return p.State
}

func lastReviewed(p *Progress) *time.Time {
	if p.LastReviewedAt == nil {
		return nil
	}
	t := p.LastReviewedAt.UTC()
	return &t
}
