package scheduler

import (
	"math"
	"time"
)

// State is an adaptive item's position in the review lifecycle.
type State string

const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReviewing  State = "reviewing"
	StateRelearning State = "relearning"
)

const (
	minDifficulty = 1.0
	maxDifficulty = 10.0

	// relearnDelay is how soon a failed item comes back when the
	// computed interval is zero days.
	relearnDelay = 10 * time.Minute
)

// firstIntervals maps the first-ever rating of an item to its initial
// interval in days. Rating 0 stays at zero days (due again in minutes).
var firstIntervals = [4]int{0, 1, 3, 4}

// AdaptiveConfig holds the tunables of the adaptive scheduler.
type AdaptiveConfig struct {
	// MaxStability caps the stability estimate, in days.
	MaxStability float64
}

// DefaultAdaptiveConfig returns the standard tuning.
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{MaxStability: 365}
}

// AdaptiveState is the scheduling memory of one adaptive item going into
// a review. Repetitions == 0 marks an item that has never been reviewed.
type AdaptiveState struct {
	Stability   float64
	Difficulty  float64
	Repetitions int
	State       State
}

// AdaptiveOutcome is the result of reviewing one adaptive item.
type AdaptiveOutcome struct {
	Stability    float64
	Difficulty   float64
	IntervalDays int
	ElapsedDays  int
	State        State
	DueAt        time.Time
}

// Adaptive schedules reviews from a continuous stability/difficulty
// estimate rather than a fixed step table.
type Adaptive struct {
	cfg AdaptiveConfig
}

// NewAdaptive creates an adaptive scheduler with the given tuning.
func NewAdaptive(cfg AdaptiveConfig) *Adaptive {
	if cfg.MaxStability <= 0 {
		cfg.MaxStability = DefaultAdaptiveConfig().MaxStability
	}
	return &Adaptive{cfg: cfg}
}

// Review computes the next scheduling state for one review. lastReviewedAt
// is nil for an item that has never been reviewed. Both timestamps are
// normalized to UTC before any arithmetic.
func (a *Adaptive) Review(st AdaptiveState, rating Rating, lastReviewedAt *time.Time, now time.Time) (AdaptiveOutcome, error) {
	if !rating.Valid() {
		return AdaptiveOutcome{}, ErrInvalidRating
	}
	now = now.UTC()

	elapsed := 0
	if lastReviewedAt != nil {
		elapsed = int(now.Sub(lastReviewedAt.UTC()).Hours() / 24)
		if elapsed < 0 {
			elapsed = 0
		}
	}

	var out AdaptiveOutcome
	if st.Repetitions == 0 {
		out = a.firstReview(rating)
	} else {
		out = a.nextReview(st, rating)
	}
	out.ElapsedDays = elapsed

	if out.IntervalDays <= 0 {
		out.DueAt = now.Add(relearnDelay)
	} else {
		out.DueAt = now.AddDate(0, 0, out.IntervalDays)
	}
	return out, nil
}

// firstReview seeds stability and difficulty purely from the rating.
func (a *Adaptive) firstReview(rating Rating) AdaptiveOutcome {
	interval := firstIntervals[rating]

	stability := math.Max(0.3, float64(interval))
	difficulty := clampDifficulty(5.0 - float64(rating)*0.5)

	state := StateLearning
	if rating >= RatingGood {
		state = StateReviewing
	}

	return AdaptiveOutcome{
		Stability:    stability,
		Difficulty:   difficulty,
		IntervalDays: interval,
		State:        state,
	}
}

func (a *Adaptive) nextReview(st AdaptiveState, rating Rating) AdaptiveOutcome {
	var (
		state      State
		stability  float64
		difficulty float64
		interval   int
	)

	switch rating {
	case RatingAgain:
		state = StateRelearning
		difficulty = clampDifficulty(st.Difficulty + 1.0)
		stability = math.Max(0.2, st.Stability*0.2)
		interval = 0
	case RatingHard:
		state = StateRelearning
		difficulty = clampDifficulty(st.Difficulty + 0.4)
		stability = math.Max(0.3, st.Stability*0.7)
		interval = atLeastOneDay(math.Round(stability))
	case RatingGood:
		state = StateReviewing
		difficulty = clampDifficulty(st.Difficulty - 0.1)
		stability = math.Min(a.cfg.MaxStability, st.Stability*1.3+1.0)
		interval = atLeastOneDay(math.Round(stability))
	case RatingEasy:
		state = StateReviewing
		difficulty = clampDifficulty(st.Difficulty - 0.4)
		stability = math.Min(a.cfg.MaxStability, st.Stability*1.6+1.5)
		interval = atLeastOneDay(math.Round(stability * 1.1))
	}

	return AdaptiveOutcome{
		Stability:    stability,
		Difficulty:   difficulty,
		IntervalDays: interval,
		State:        state,
	}
}

func clampDifficulty(d float64) float64 {
	return math.Min(maxDifficulty, math.Max(minDifficulty, d))
}

func atLeastOneDay(days float64) int {
	if days < 1 {
		return 1
	}
	return int(days)
}
