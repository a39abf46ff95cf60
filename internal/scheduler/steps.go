package scheduler

import (
	"math"
	"time"
)

// Phase is a step-scheduled item's position in the review lifecycle.
// The phase machine is New -> Learn -> Review <-> Relearn.
type Phase string

const (
	PhaseNew     Phase = "new"
	PhaseLearn   Phase = "learn"
	PhaseReview  Phase = "review"
	PhaseRelearn Phase = "relearn"
)

// StepsConfig holds the tunables of the step scheduler.
type StepsConfig struct {
	// LearningSteps is the step table used while an item is in Learn.
	LearningSteps []time.Duration
	// RelearningSteps is the step table used after a Review-phase lapse.
	RelearningSteps []time.Duration
	// GraduateIntervalDays is the first Review interval after a "good"
	// graduation; EasyIntervalDays after an "easy" one.
	GraduateIntervalDays int
	EasyIntervalDays     int
	// MaxIntervalDays caps every Review-phase interval.
	MaxIntervalDays int
}

// DefaultStepsConfig returns the conventional flashcard tuning:
// learning steps of 1 and 10 minutes, a single 10-minute relearning
// step, and a 100-year interval ceiling.
func DefaultStepsConfig() StepsConfig {
	return StepsConfig{
		LearningSteps:        []time.Duration{1 * time.Minute, 10 * time.Minute},
		RelearningSteps:      []time.Duration{10 * time.Minute},
		GraduateIntervalDays: 1,
		EasyIntervalDays:     4,
		MaxIntervalDays:      36500,
	}
}

const (
	// StartEase seeds the ease factor of a brand-new step item.
	StartEase = 2.5
	minEase   = 1.3
	maxEase   = 2.5

	hardIntervalGrowth = 1.2
	easyIntervalBonus  = 1.3
	// lapseRecoveryFactor shrinks the pre-lapse interval when an item
	// graduates back from Relearn to Review.
	lapseRecoveryFactor = 0.7
)

// StepState is the scheduling memory of one step-scheduled item going
// into a review.
type StepState struct {
	Phase        Phase
	StepIndex    int
	Ease         float64
	IntervalDays int
}

// StepOutcome is the result of reviewing one step-scheduled item.
// DueAt is minutes away while the item is in Learn or Relearn and
// whole days away while it is in Review.
type StepOutcome struct {
	Phase        Phase
	StepIndex    int
	Ease         float64
	IntervalDays int
	DueAt        time.Time
}

// Steps reproduces the discrete-phase flashcard algorithm used for
// imported vocabulary: a learning-step table, an ease factor bounded to
// [1.3, 2.5], and interval multipliers in the Review phase.
type Steps struct {
	cfg StepsConfig
}

// NewSteps creates a step scheduler with the given tuning. Empty step
// tables fall back to the defaults.
func NewSteps(cfg StepsConfig) *Steps {
	def := DefaultStepsConfig()
	if len(cfg.LearningSteps) == 0 {
		cfg.LearningSteps = def.LearningSteps
	}
	if len(cfg.RelearningSteps) == 0 {
		cfg.RelearningSteps = def.RelearningSteps
	}
	if cfg.GraduateIntervalDays <= 0 {
		cfg.GraduateIntervalDays = def.GraduateIntervalDays
	}
	if cfg.EasyIntervalDays <= 0 {
		cfg.EasyIntervalDays = def.EasyIntervalDays
	}
	if cfg.MaxIntervalDays <= 0 {
		cfg.MaxIntervalDays = def.MaxIntervalDays
	}
	return &Steps{cfg: cfg}
}

// Review computes the next scheduling state for one review.
func (s *Steps) Review(st StepState, rating Rating, now time.Time) (StepOutcome, error) {
	if !rating.Valid() {
		return StepOutcome{}, ErrInvalidRating
	}
	now = now.UTC()

	if st.Ease == 0 {
		st.Ease = StartEase
	}
	if st.Phase == "" {
		st.Phase = PhaseNew
	}
	// A stored step index can exceed the table when the configured
	// steps shrink between reviews; treat it as the last step.
	if n := len(s.cfg.LearningSteps); st.Phase == PhaseLearn && st.StepIndex >= n {
		st.StepIndex = n - 1
	}
	if n := len(s.cfg.RelearningSteps); st.Phase == PhaseRelearn && st.StepIndex >= n {
		st.StepIndex = n - 1
	}

	var out StepOutcome
	switch st.Phase {
	case PhaseNew, PhaseLearn:
		out = s.reviewLearning(st, rating)
	case PhaseReview:
		out = s.reviewReview(st, rating)
	case PhaseRelearn:
		out = s.reviewRelearning(st, rating)
	}

	switch out.Phase {
	case PhaseLearn:
		out.DueAt = now.Add(s.cfg.LearningSteps[out.StepIndex])
	case PhaseRelearn:
		out.DueAt = now.Add(s.cfg.RelearningSteps[out.StepIndex])
	default:
		out.DueAt = now.AddDate(0, 0, out.IntervalDays)
	}
	return out, nil
}

// reviewLearning handles the New and Learn phases against the
// learning-step table.
func (s *Steps) reviewLearning(st StepState, rating Rating) StepOutcome {
	out := StepOutcome{Phase: PhaseLearn, Ease: st.Ease, IntervalDays: st.IntervalDays}
	steps := s.cfg.LearningSteps

	switch {
	case rating == RatingAgain:
		out.StepIndex = 0

	case rating == RatingHard:
		if st.Phase == PhaseNew {
			out.StepIndex = 0
		} else {
			out.StepIndex = st.StepIndex // repeat the current step
		}

	default: // good or easy: advance, graduating past the last step
		next := st.StepIndex + 1
		if st.Phase == PhaseNew {
			next = 1
		}
		if next >= len(steps) {
			return s.graduate(rating, st.Ease)
		}
		out.StepIndex = next
	}
	return out
}

// graduate moves an item out of the learning steps into Review.
func (s *Steps) graduate(rating Rating, ease float64) StepOutcome {
	interval := s.cfg.GraduateIntervalDays
	if rating == RatingEasy {
		interval = s.cfg.EasyIntervalDays
	}
	return StepOutcome{
		Phase:        PhaseReview,
		Ease:         ease,
		IntervalDays: s.clampInterval(interval),
	}
}

func (s *Steps) reviewReview(st StepState, rating Rating) StepOutcome {
	switch rating {
	case RatingAgain:
		// Lapse: dock ease and drop into the relearning steps. The
		// pre-lapse interval is kept for the recovery calculation.
		return StepOutcome{
			Phase:        PhaseRelearn,
			StepIndex:    0,
			Ease:         math.Max(minEase, st.Ease-0.2),
			IntervalDays: st.IntervalDays,
		}
	case RatingHard:
		ease := math.Max(minEase, st.Ease-0.15)
		return StepOutcome{
			Phase:        PhaseReview,
			Ease:         ease,
			IntervalDays: s.clampInterval(int(math.Round(float64(st.IntervalDays) * hardIntervalGrowth))),
		}
	case RatingGood:
		return StepOutcome{
			Phase:        PhaseReview,
			Ease:         st.Ease,
			IntervalDays: s.clampInterval(int(math.Round(float64(st.IntervalDays) * st.Ease))),
		}
	default: // easy
		ease := math.Min(maxEase, st.Ease+0.15)
		return StepOutcome{
			Phase:        PhaseReview,
			Ease:         ease,
			IntervalDays: s.clampInterval(int(math.Round(float64(st.IntervalDays) * ease * easyIntervalBonus))),
		}
	}
}

func (s *Steps) reviewRelearning(st StepState, rating Rating) StepOutcome {
	if rating == RatingAgain {
		return StepOutcome{
			Phase:        PhaseRelearn,
			StepIndex:    0,
			Ease:         st.Ease,
			IntervalDays: st.IntervalDays,
		}
	}
	// Any passing rating graduates back to Review at 70% of the
	// pre-lapse interval.
	return StepOutcome{
		Phase:        PhaseReview,
		Ease:         st.Ease,
		IntervalDays: s.clampInterval(int(math.Round(lapseRecoveryFactor * float64(st.IntervalDays)))),
	}
}

func (s *Steps) clampInterval(days int) int {
	if days < 1 {
		return 1
	}
	if days > s.cfg.MaxIntervalDays {
		return s.cfg.MaxIntervalDays
	}
	return days
}
