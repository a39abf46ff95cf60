// Package review routes a learner's review event to the scheduler that
// owns the item, applies the outcome to the item's progress record, and
// produces the append-only history entry for the transition.
package review

import (
	"errors"
	"fmt"
	"time"

	"github.com/parolabs/parola/internal/scheduler"
)

// Kind classifies what a learnable item is.
type Kind string

const (
	KindVocabulary Kind = "vocabulary"
	KindGrammar    Kind = "grammar"
	KindError      Kind = "error"
)

// SchedulerKind tags which algorithm owns an item. It is set when the
// item is created and must not change for the item's lifetime, because
// the two schedulers keep incompatible state shapes.
type SchedulerKind string

const (
	// SchedulerAdaptive owns natively added items.
	SchedulerAdaptive SchedulerKind = "adaptive"
	// SchedulerSteps owns vocabulary imported from external flashcard decks.
	SchedulerSteps SchedulerKind = "steps"
)

var (
	// ErrMissingTimestamp is returned when a review arrives without an
	// occurred-at time. Defaulting to the current instant happens only
	// at the CLI boundary, never here.
	ErrMissingTimestamp = errors.New("review timestamp not supplied")

	// ErrUnknownScheduler is returned when a progress record names a
	// scheduler kind the dispatcher does not route.
	ErrUnknownScheduler = errors.New("unknown scheduler kind")

	// ErrInconsistentState is returned when a progress record's shape
	// does not match its scheduler kind. Guessing here would corrupt
	// scheduling history, so the dispatcher refuses.
	ErrInconsistentState = errors.New("progress record does not match its scheduler kind")
)

// Progress is the full scheduling memory of one item for one learner.
// The State field holds the lifecycle label of whichever scheduler owns
// the item (new/learning/reviewing/relearning for adaptive items,
// new/learn/review/relearn for step items). Ease and StepIndex are only
// meaningful for step items; Stability and Difficulty only for adaptive
// ones.
type Progress struct {
	ItemID      string
	LearnerID   string
	Kind        Kind
	Scheduler   SchedulerKind
	Term        string
	Translation string

	Stability    float64
	Difficulty   float64
	Ease         float64
	Repetitions  int
	Lapses       int
	IntervalDays int
	State        string
	StepIndex    int

	DueAt          *time.Time
	LastReviewedAt *time.Time
}

// NeverReviewed reports whether the item is brand new.
func (p *Progress) NeverReviewed() bool {
	return p.Repetitions == 0
}

// HistoryEntry records one processed review: the rating, the scheduler
// used, and the before/after scheduling values. Entries are append-only
// and never mutated once written.
type HistoryEntry struct {
	EntryID    string
	ItemID     string
	LearnerID  string
	Kind       Kind
	Scheduler  SchedulerKind
	Rating     scheduler.Rating
	Transition string // e.g. "new→learning"
	LatencyMs  int
	OccurredAt time.Time

	PrevIntervalDays int
	NewIntervalDays  int
	PrevEase         float64
	NewEase          float64
	PrevStability    float64
	NewStability     float64
	PrevDifficulty   float64
	NewDifficulty    float64
}

// adaptiveState converts the stored record into the adaptive scheduler's
// state shape, rejecting records whose shape belongs to the step scheduler.
func adaptiveState(p *Progress) (scheduler.AdaptiveState, error) {
	if p.StepIndex != 0 || p.Ease != 0 {
		return scheduler.AdaptiveState{}, fmt.Errorf("%w: adaptive item %q carries step-scheduler fields", ErrInconsistentState, p.ItemID)
	}
	state := scheduler.State(p.State)
	if p.State == "" {
		state = scheduler.StateNew
	}
	switch state {
	case scheduler.StateNew, scheduler.StateLearning, scheduler.StateReviewing, scheduler.StateRelearning:
	default:
		return scheduler.AdaptiveState{}, fmt.Errorf("%w: unknown adaptive state %q on item %q", ErrInconsistentState, p.State, p.ItemID)
	}
	return scheduler.AdaptiveState{
		Stability:   p.Stability,
		Difficulty:  p.Difficulty,
		Repetitions: p.Repetitions,
		State:       state,
	}, nil
}

// stepState converts the stored record into the step scheduler's state
// shape. A step item that has been reviewed before must carry an ease
// factor; its absence means the record was written by the wrong scheduler.
func stepState(p *Progress) (scheduler.StepState, error) {
	if p.Repetitions > 0 && p.Ease == 0 {
		return scheduler.StepState{}, fmt.Errorf("%w: step item %q has no ease factor", ErrInconsistentState, p.ItemID)
	}
	phase := scheduler.Phase(p.State)
	if p.State == "" {
		phase = scheduler.PhaseNew
	}
	switch phase {
	case scheduler.PhaseNew, scheduler.PhaseLearn, scheduler.PhaseReview, scheduler.PhaseRelearn:
	default:
		return scheduler.StepState{}, fmt.Errorf("%w: unknown step phase %q on item %q", ErrInconsistentState, p.State, p.ItemID)
	}
	return scheduler.StepState{
		Phase:        phase,
		StepIndex:    p.StepIndex,
		Ease:         p.Ease,
		IntervalDays: p.IntervalDays,
	}, nil
}
