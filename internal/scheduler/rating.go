// Package scheduler implements the two review-scheduling algorithms:
// a stability/difficulty model for items added natively (Adaptive) and a
// discrete learning-step model for imported flashcards (Steps).
//
// Both schedulers are pure functions over value types. They never read
// the clock, never touch storage, and always receive `now` explicitly,
// so identical inputs produce identical outputs.
package scheduler

import "errors"

// Rating is the learner's self-reported recall quality for one review.
type Rating int

const (
	RatingAgain Rating = iota // total failure
	RatingHard                // recalled with significant effort
	RatingGood                // recalled correctly
	RatingEasy                // trivially easy
)

// ErrInvalidRating is returned when a rating falls outside the 0-3 scale.
// No scheduling state is touched when this is returned.
var ErrInvalidRating = errors.New("rating must be between 0 (again) and 3 (easy)")

// Valid reports whether r is within the closed 0-3 scale.
func (r Rating) Valid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return "invalid"
	}
}
