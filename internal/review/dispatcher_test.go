package review

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/parolabs/parola/internal/scheduler"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(
		scheduler.NewAdaptive(scheduler.DefaultAdaptiveConfig()),
		scheduler.NewSteps(scheduler.DefaultStepsConfig()),
	)
}

func adaptiveItem() Progress {
	return Progress{
		ItemID:    "item-a",
		LearnerID: "learner-1",
		Kind:      KindVocabulary,
		Scheduler: SchedulerAdaptive,
		Term:      "la ventana",
		State:     "new",
	}
}

func stepItem() Progress {
	return Progress{
		ItemID:    "item-s",
		LearnerID: "learner-1",
		Kind:      KindVocabulary,
		Scheduler: SchedulerSteps,
		Term:      "der Tisch",
		Ease:      scheduler.StartEase,
		State:     "new",
	}
}

func TestProcess_NewAdaptiveItem_GoodRating(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	updated, entry, err := d.Process(adaptiveItem(), scheduler.RatingGood, now, 2400)
	if err != nil {
		t.Fatal(err)
	}

	if updated.State != "reviewing" {
		t.Errorf("State = %q, want reviewing", updated.State)
	}
	if updated.IntervalDays != 3 {
		t.Errorf("IntervalDays = %d, want 3", updated.IntervalDays)
	}
	if math.Abs(updated.Stability-3.0) > 1e-9 {
		t.Errorf("Stability = %v, want 3.0", updated.Stability)
	}
	if math.Abs(updated.Difficulty-4.0) > 1e-9 {
		t.Errorf("Difficulty = %v, want 4.0", updated.Difficulty)
	}
	if updated.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", updated.Repetitions)
	}
	if updated.Lapses != 0 {
		t.Errorf("Lapses = %d, want 0", updated.Lapses)
	}
	if updated.DueAt == nil || !updated.DueAt.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("DueAt = %v, want %v", updated.DueAt, now.AddDate(0, 0, 3))
	}
	if updated.LastReviewedAt == nil || !updated.LastReviewedAt.Equal(now) {
		t.Errorf("LastReviewedAt = %v, want %v", updated.LastReviewedAt, now)
	}

	if entry.Transition != "new→reviewing" {
		t.Errorf("Transition = %q, want new→reviewing", entry.Transition)
	}
	if entry.EntryID == "" {
		t.Error("expected a generated entry ID")
	}
	if entry.PrevIntervalDays != 0 || entry.NewIntervalDays != 3 {
		t.Errorf("interval transition = %d→%d, want 0→3", entry.PrevIntervalDays, entry.NewIntervalDays)
	}
	if entry.LatencyMs != 2400 {
		t.Errorf("LatencyMs = %d, want 2400", entry.LatencyMs)
	}
}

func TestProcess_InvalidRating_NoMutation(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)
	original := adaptiveItem()

	for _, rating := range []scheduler.Rating{-1, 4} {
		_, _, err := d.Process(original, rating, now, 0)
		if !errors.Is(err, scheduler.ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	// The input record passes by value; verify the caller's copy is untouched.
	if original.Repetitions != 0 || original.State != "new" {
		t.Errorf("input mutated: %+v", original)
	}
}

func TestProcess_MissingTimestamp(t *testing.T) {
	d := newTestDispatcher()

	_, _, err := d.Process(adaptiveItem(), scheduler.RatingGood, time.Time{}, 0)
	if !errors.Is(err, ErrMissingTimestamp) {
		t.Errorf("err = %v, want ErrMissingTimestamp", err)
	}
}

func TestProcess_UnknownSchedulerKind(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	p := adaptiveItem()
	p.Scheduler = "sm2"
	_, _, err := d.Process(p, scheduler.RatingGood, now, 0)
	if !errors.Is(err, ErrUnknownScheduler) {
		t.Errorf("err = %v, want ErrUnknownScheduler", err)
	}
}

func TestProcess_StepItemWithoutEase_Rejected(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	p := stepItem()
	p.Repetitions = 3
	p.Ease = 0
	p.State = "review"
	_, _, err := d.Process(p, scheduler.RatingGood, now, 0)
	if !errors.Is(err, ErrInconsistentState) {
		t.Errorf("err = %v, want ErrInconsistentState", err)
	}
}

func TestProcess_AdaptiveItemWithStepFields_Rejected(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	p := adaptiveItem()
	p.StepIndex = 1
	_, _, err := d.Process(p, scheduler.RatingGood, now, 0)
	if !errors.Is(err, ErrInconsistentState) {
		t.Errorf("err = %v, want ErrInconsistentState", err)
	}
}

func TestProcess_LapseThresholds(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		item       Progress
		rating     scheduler.Rating
		wantLapses int
	}{
		{"adaptive hard counts", adaptiveItem(), scheduler.RatingHard, 1},
		{"adaptive good does not", adaptiveItem(), scheduler.RatingGood, 0},
		{"steps good counts", stepItem(), scheduler.RatingGood, 1},
		{"steps easy does not", stepItem(), scheduler.RatingEasy, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, _, err := d.Process(tt.item, tt.rating, now, 0)
			if err != nil {
				t.Fatal(err)
			}
			if updated.Lapses != tt.wantLapses {
				t.Errorf("Lapses = %d, want %d", updated.Lapses, tt.wantLapses)
			}
		})
	}
}

func TestProcess_FailTransitionLabel(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	p := adaptiveItem()
	p.Repetitions = 4
	p.Stability = 9
	p.Difficulty = 5
	p.State = "reviewing"

	updated, entry, err := d.Process(p, scheduler.RatingAgain, now, 0)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Transition != "reviewing→relearning" {
		t.Errorf("Transition = %q, want reviewing→relearning", entry.Transition)
	}
	if updated.IntervalDays != 0 {
		t.Errorf("IntervalDays = %d, want 0", updated.IntervalDays)
	}
	if updated.DueAt == nil || updated.DueAt.Sub(now) >= 24*time.Hour {
		t.Error("failed item must be due again within a day")
	}
}

func TestProcess_StepGraduationThroughDispatcher(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	p, _, err := d.Process(stepItem(), scheduler.RatingGood, now, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.State != "learn" || p.StepIndex != 1 {
		t.Fatalf("after first good: state=%q step=%d, want learn step 1", p.State, p.StepIndex)
	}

	p, entry, err := d.Process(p, scheduler.RatingGood, *p.DueAt, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.State != "review" {
		t.Errorf("State = %q, want review", p.State)
	}
	if p.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", p.IntervalDays)
	}
	if entry.Transition != "learn→review" {
		t.Errorf("Transition = %q, want learn→review", entry.Transition)
	}
	if p.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", p.Repetitions)
	}
}

func TestProcess_NonUTCTimestampNormalized(t *testing.T) {
	d := newTestDispatcher()
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, tokyo)

	updated, entry, err := d.Process(adaptiveItem(), scheduler.RatingGood, now, 0)
	if err != nil {
		t.Fatal(err)
	}
	if entry.OccurredAt.Location() != time.UTC {
		t.Errorf("OccurredAt location = %v, want UTC", entry.OccurredAt.Location())
	}
	if updated.LastReviewedAt.Location() != time.UTC {
		t.Errorf("LastReviewedAt location = %v, want UTC", updated.LastReviewedAt.Location())
	}
}
