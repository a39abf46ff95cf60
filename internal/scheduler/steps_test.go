package scheduler

import (
	"math"
	"testing"
	"time"
)

func stepsNow() time.Time {
	return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestStepsReview_InvalidRating(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())

	for _, rating := range []Rating{-1, 4} {
		_, err := s.Review(StepState{}, rating, stepsNow())
		if err != ErrInvalidRating {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestStepsReview_NewAgain_EntersFirstLearningStep(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	out, err := s.Review(StepState{Phase: PhaseNew}, RatingAgain, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseLearn {
		t.Errorf("Phase = %v, want learn", out.Phase)
	}
	if out.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0", out.StepIndex)
	}
	want := now.Add(1 * time.Minute)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
	if out.Ease != StartEase {
		t.Errorf("Ease = %v, want seeded %v", out.Ease, StartEase)
	}
}

func TestStepsReview_NewGood_SkipsToSecondStep(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	out, err := s.Review(StepState{Phase: PhaseNew}, RatingGood, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseLearn {
		t.Errorf("Phase = %v, want learn", out.Phase)
	}
	if out.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", out.StepIndex)
	}
	want := now.Add(10 * time.Minute)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
}

func TestStepsReview_NewGood_SingleStep_GraduatesImmediately(t *testing.T) {
	cfg := DefaultStepsConfig()
	cfg.LearningSteps = []time.Duration{10 * time.Minute}
	s := NewSteps(cfg)
	now := stepsNow()

	tests := []struct {
		rating       Rating
		wantInterval int
	}{
		{RatingGood, 1},
		{RatingEasy, 4},
	}
	for _, tt := range tests {
		out, err := s.Review(StepState{Phase: PhaseNew}, tt.rating, now)
		if err != nil {
			t.Fatal(err)
		}
		if out.Phase != PhaseReview {
			t.Errorf("rating %v: Phase = %v, want review", tt.rating, out.Phase)
		}
		if out.IntervalDays != tt.wantInterval {
			t.Errorf("rating %v: IntervalDays = %d, want %d", tt.rating, out.IntervalDays, tt.wantInterval)
		}
		want := now.AddDate(0, 0, tt.wantInterval)
		if !out.DueAt.Equal(want) {
			t.Errorf("rating %v: DueAt = %v, want %v", tt.rating, out.DueAt, want)
		}
	}
}

func TestStepsReview_Graduation_GoodThenGood(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	out, err := s.Review(StepState{Phase: PhaseNew}, RatingGood, now)
	if err != nil {
		t.Fatal(err)
	}
	st := StepState{Phase: out.Phase, StepIndex: out.StepIndex, Ease: out.Ease}

	out, err = s.Review(st, RatingGood, out.DueAt)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseReview {
		t.Errorf("Phase = %v, want review", out.Phase)
	}
	if out.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", out.IntervalDays)
	}
}

func TestStepsReview_Graduation_GoodThenEasy(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	out, err := s.Review(StepState{Phase: PhaseNew}, RatingGood, now)
	if err != nil {
		t.Fatal(err)
	}
	st := StepState{Phase: out.Phase, StepIndex: out.StepIndex, Ease: out.Ease}

	out, err = s.Review(st, RatingEasy, out.DueAt)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseReview {
		t.Errorf("Phase = %v, want review", out.Phase)
	}
	if out.IntervalDays != 4 {
		t.Errorf("IntervalDays = %d, want 4", out.IntervalDays)
	}
}

func TestStepsReview_LearnAgain_ResetsToFirstStep(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())

	st := StepState{Phase: PhaseLearn, StepIndex: 1, Ease: StartEase}
	out, err := s.Review(st, RatingAgain, stepsNow())
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseLearn || out.StepIndex != 0 {
		t.Errorf("got phase=%v step=%d, want learn step 0", out.Phase, out.StepIndex)
	}
}

func TestStepsReview_LearnHard_RepeatsCurrentStep(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	st := StepState{Phase: PhaseLearn, StepIndex: 1, Ease: StartEase}
	out, err := s.Review(st, RatingHard, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", out.StepIndex)
	}
	want := now.Add(10 * time.Minute)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
}

func TestStepsReview_StaleStepIndex_ClampedToLastStep(t *testing.T) {
	// Shrinking the configured step table can leave a stored item at an
	// index past the end. The review must treat it as the last step,
	// not index out of range.
	cfg := DefaultStepsConfig()
	cfg.LearningSteps = []time.Duration{time.Minute}
	s := NewSteps(cfg)
	now := stepsNow()

	st := StepState{Phase: PhaseLearn, StepIndex: 2, Ease: StartEase}
	out, err := s.Review(st, RatingHard, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseLearn || out.StepIndex != 0 {
		t.Errorf("Phase/StepIndex = %v/%d, want learn/0", out.Phase, out.StepIndex)
	}
	if want := now.Add(time.Minute); !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}

	// A passing rating from the clamped last step graduates.
	out, err = s.Review(st, RatingGood, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseReview || out.IntervalDays != cfg.GraduateIntervalDays {
		t.Errorf("Phase/IntervalDays = %v/%d, want review/%d", out.Phase, out.IntervalDays, cfg.GraduateIntervalDays)
	}
}

func TestStepsReview_ReviewPhase_RatingTable(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())

	tests := []struct {
		name         string
		rating       Rating
		wantPhase    Phase
		wantEase     float64
		wantInterval int
	}{
		{"again lapses into relearn", RatingAgain, PhaseRelearn, 2.3, 10},
		{"hard grows interval 1.2x", RatingHard, PhaseReview, 2.35, 12},
		{"good multiplies by ease", RatingGood, PhaseReview, 2.5, 25},
		{"easy multiplies by ease and bonus", RatingEasy, PhaseReview, 2.5, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := StepState{Phase: PhaseReview, Ease: 2.5, IntervalDays: 10}
			out, err := s.Review(st, tt.rating, stepsNow())
			if err != nil {
				t.Fatal(err)
			}
			if out.Phase != tt.wantPhase {
				t.Errorf("Phase = %v, want %v", out.Phase, tt.wantPhase)
			}
			if math.Abs(out.Ease-tt.wantEase) > 1e-9 {
				t.Errorf("Ease = %v, want %v", out.Ease, tt.wantEase)
			}
			if out.IntervalDays != tt.wantInterval {
				t.Errorf("IntervalDays = %d, want %d", out.IntervalDays, tt.wantInterval)
			}
		})
	}
}

func TestStepsReview_ReviewAgain_DueWithinMinutes(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	st := StepState{Phase: PhaseReview, Ease: 2.0, IntervalDays: 30}
	out, err := s.Review(st, RatingAgain, now)
	if err != nil {
		t.Fatal(err)
	}
	want := now.Add(10 * time.Minute)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
	if out.DueAt.Sub(now) >= 24*time.Hour {
		t.Error("lapsed item must be due again within a day")
	}
}

func TestStepsReview_EaseStaysBounded(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())

	st := StepState{Phase: PhaseReview, Ease: 1.35, IntervalDays: 5}
	out, err := s.Review(st, RatingAgain, stepsNow())
	if err != nil {
		t.Fatal(err)
	}
	if out.Ease != 1.3 {
		t.Errorf("Ease = %v, want floored at 1.3", out.Ease)
	}

	st = StepState{Phase: PhaseReview, Ease: 2.45, IntervalDays: 5}
	out, err = s.Review(st, RatingEasy, stepsNow())
	if err != nil {
		t.Fatal(err)
	}
	if out.Ease != 2.5 {
		t.Errorf("Ease = %v, want capped at 2.5", out.Ease)
	}
}

func TestStepsReview_RelearnGraduation_PenalizesInterval(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())
	now := stepsNow()

	st := StepState{Phase: PhaseRelearn, StepIndex: 0, Ease: 2.1, IntervalDays: 20}
	out, err := s.Review(st, RatingGood, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseReview {
		t.Errorf("Phase = %v, want review", out.Phase)
	}
	if out.IntervalDays != 14 {
		t.Errorf("IntervalDays = %d, want 14 (70%% of 20)", out.IntervalDays)
	}
	want := now.AddDate(0, 0, 14)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
}

func TestStepsReview_RelearnAgain_RestartsRelearningSteps(t *testing.T) {
	s := NewSteps(DefaultStepsConfig())

	st := StepState{Phase: PhaseRelearn, StepIndex: 0, Ease: 2.1, IntervalDays: 20}
	out, err := s.Review(st, RatingAgain, stepsNow())
	if err != nil {
		t.Fatal(err)
	}
	if out.Phase != PhaseRelearn || out.StepIndex != 0 {
		t.Errorf("got phase=%v step=%d, want relearn step 0", out.Phase, out.StepIndex)
	}
	if out.IntervalDays != 20 {
		t.Errorf("IntervalDays = %d, want pre-lapse 20 preserved", out.IntervalDays)
	}
}

func TestStepsReview_IntervalCapAndFloor(t *testing.T) {
	cfg := DefaultStepsConfig()
	cfg.MaxIntervalDays = 100
	s := NewSteps(cfg)

	st := StepState{Phase: PhaseReview, Ease: 2.5, IntervalDays: 90}
	out, err := s.Review(st, RatingGood, stepsNow())
	if err != nil {
		t.Fatal(err)
	}
	if out.IntervalDays != 100 {
		t.Errorf("IntervalDays = %d, want capped at 100", out.IntervalDays)
	}

	st = StepState{Phase: PhaseRelearn, Ease: 2.5, IntervalDays: 1}
	out, err = s.Review(st, RatingGood, stepsNow())
	if err != nil {
		t.Fatal(err)
	}
	if out.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want floored at 1", out.IntervalDays)
	}
}
