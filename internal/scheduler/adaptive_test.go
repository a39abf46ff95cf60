package scheduler

import (
	"math"
	"testing"
	"time"
)

func TestAdaptiveReview_InvalidRating(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, rating := range []Rating{-1, 4, 99} {
		_, err := a.Review(AdaptiveState{}, rating, nil, now)
		if err != ErrInvalidRating {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestAdaptiveReview_FirstReview(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		rating         Rating
		wantInterval   int
		wantStability  float64
		wantDifficulty float64
		wantState      State
	}{
		{RatingAgain, 0, 0.3, 5.0, StateLearning},
		{RatingHard, 1, 1.0, 4.5, StateLearning},
		{RatingGood, 3, 3.0, 4.0, StateReviewing},
		{RatingEasy, 4, 4.0, 3.5, StateReviewing},
	}

	for _, tt := range tests {
		out, err := a.Review(AdaptiveState{}, tt.rating, nil, now)
		if err != nil {
			t.Fatalf("rating %v: %v", tt.rating, err)
		}
		if out.IntervalDays != tt.wantInterval {
			t.Errorf("rating %v: IntervalDays = %d, want %d", tt.rating, out.IntervalDays, tt.wantInterval)
		}
		if out.Stability != tt.wantStability {
			t.Errorf("rating %v: Stability = %v, want %v", tt.rating, out.Stability, tt.wantStability)
		}
		if out.Difficulty != tt.wantDifficulty {
			t.Errorf("rating %v: Difficulty = %v, want %v", tt.rating, out.Difficulty, tt.wantDifficulty)
		}
		if out.State != tt.wantState {
			t.Errorf("rating %v: State = %v, want %v", tt.rating, out.State, tt.wantState)
		}
		if out.ElapsedDays != 0 {
			t.Errorf("rating %v: ElapsedDays = %d, want 0", tt.rating, out.ElapsedDays)
		}
	}
}

func TestAdaptiveReview_FirstGoodReview_DueInThreeDays(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	out, err := a.Review(AdaptiveState{}, RatingGood, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	want := now.AddDate(0, 0, 3)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
}

func TestAdaptiveReview_FailDueWithinTenMinutes(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	st := AdaptiveState{Stability: 12, Difficulty: 4, Repetitions: 5, State: StateReviewing}

	out, err := a.Review(st, RatingAgain, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.IntervalDays != 0 {
		t.Errorf("IntervalDays = %d, want 0", out.IntervalDays)
	}
	if out.State != StateRelearning {
		t.Errorf("State = %v, want relearning", out.State)
	}
	want := now.Add(10 * time.Minute)
	if !out.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", out.DueAt, want)
	}
	wantStab := 12 * 0.2
	if math.Abs(out.Stability-wantStab) > 1e-9 {
		t.Errorf("Stability = %v, want %v", out.Stability, wantStab)
	}
	if out.Difficulty != 5.0 {
		t.Errorf("Difficulty = %v, want 5.0", out.Difficulty)
	}
}

func TestAdaptiveReview_HardShrinksStability(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	st := AdaptiveState{Stability: 10, Difficulty: 5, Repetitions: 3, State: StateReviewing}

	out, err := a.Review(st, RatingHard, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.State != StateRelearning {
		t.Errorf("State = %v, want relearning", out.State)
	}
	if math.Abs(out.Stability-7.0) > 1e-9 {
		t.Errorf("Stability = %v, want 7.0", out.Stability)
	}
	if out.IntervalDays != 7 {
		t.Errorf("IntervalDays = %d, want 7", out.IntervalDays)
	}
	if math.Abs(out.Difficulty-5.4) > 1e-9 {
		t.Errorf("Difficulty = %v, want 5.4", out.Difficulty)
	}
}

func TestAdaptiveReview_EasyStreak_IntervalsNonDecreasing(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	out, err := a.Review(AdaptiveState{}, RatingEasy, nil, now)
	if err != nil {
		t.Fatal(err)
	}

	st := AdaptiveState{
		Stability:   out.Stability,
		Difficulty:  out.Difficulty,
		Repetitions: 1,
		State:       out.State,
	}
	prev := out.IntervalDays
	for i := 0; i < 30; i++ {
		last := now
		now = out.DueAt
		out, err = a.Review(st, RatingEasy, &last, now)
		if err != nil {
			t.Fatal(err)
		}
		if out.IntervalDays < prev {
			t.Fatalf("review %d: interval %d < previous %d", i, out.IntervalDays, prev)
		}
		prev = out.IntervalDays
		st.Stability = out.Stability
		st.Difficulty = out.Difficulty
		st.Repetitions++
	}

	if out.Stability > DefaultAdaptiveConfig().MaxStability {
		t.Errorf("Stability = %v exceeds cap", out.Stability)
	}
}

func TestAdaptiveReview_DifficultyStaysClamped(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// Repeated failures push difficulty toward the ceiling.
	st := AdaptiveState{Stability: 5, Difficulty: 9.8, Repetitions: 4, State: StateReviewing}
	out, err := a.Review(st, RatingAgain, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Difficulty != 10.0 {
		t.Errorf("Difficulty = %v, want clamped to 10.0", out.Difficulty)
	}

	// Repeated easy reviews push it toward the floor.
	st = AdaptiveState{Stability: 5, Difficulty: 1.2, Repetitions: 4, State: StateReviewing}
	out, err = a.Review(st, RatingEasy, nil, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Difficulty != 1.0 {
		t.Errorf("Difficulty = %v, want clamped to 1.0", out.Difficulty)
	}
}

func TestAdaptiveReview_ElapsedDays(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	last := now.AddDate(0, 0, -6)
	st := AdaptiveState{Stability: 5, Difficulty: 5, Repetitions: 2, State: StateReviewing}
	out, err := a.Review(st, RatingGood, &last, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.ElapsedDays != 6 {
		t.Errorf("ElapsedDays = %d, want 6", out.ElapsedDays)
	}

	// A last-review timestamp in the future floors at zero.
	future := now.AddDate(0, 0, 2)
	out, err = a.Review(st, RatingGood, &future, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.ElapsedDays != 0 {
		t.Errorf("ElapsedDays = %d, want 0", out.ElapsedDays)
	}
}

func TestAdaptiveReview_MixedZonesNormalizedToUTC(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -3).In(tokyo)

	st := AdaptiveState{Stability: 5, Difficulty: 5, Repetitions: 2, State: StateReviewing}
	out, err := a.Review(st, RatingGood, &last, now.In(tokyo))
	if err != nil {
		t.Fatal(err)
	}
	if out.ElapsedDays != 3 {
		t.Errorf("ElapsedDays = %d, want 3", out.ElapsedDays)
	}
	if out.DueAt.Location() != time.UTC {
		t.Errorf("DueAt location = %v, want UTC", out.DueAt.Location())
	}
}

func TestAdaptiveReview_Deterministic(t *testing.T) {
	a := NewAdaptive(DefaultAdaptiveConfig())
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -4)
	st := AdaptiveState{Stability: 8.5, Difficulty: 6.2, Repetitions: 7, State: StateReviewing}

	first, err := a.Review(st, RatingGood, &last, now)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Review(st, RatingGood, &last, now)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("outputs differ for identical inputs: %+v vs %+v", first, second)
	}
}
