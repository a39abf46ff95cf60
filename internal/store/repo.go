package store

import (
	"context"
	"time"
)

// ProgressData is the stored scheduling state of one item for one
// learner, as flat persistence fields. The review package converts
// between this and its own Progress type.
type ProgressData struct {
	ItemID      string
	LearnerID   string
	Kind        string
	Scheduler   string
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

// ReviewEventData captures one processed review for the append-only log.
type ReviewEventData struct {
	EntryID    string
	ItemID     string
	LearnerID  string
	Kind       string
	Scheduler  string
	Rating     int
	Transition string
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

// ReviewRecord is a stored review event returned by history queries.
type ReviewRecord struct {
	Sequence   int64
	ItemID     string
	Kind       string
	Scheduler  string
	Rating     int
	Transition string
	OccurredAt time.Time
}

// ImportEventData captures one deck import.
type ImportEventData struct {
	BatchID       string
	LearnerID     string
	DeckName      string
	SourceFile    string
	ImportedCount int
	SkippedCount  int
}

// StateCount pairs a lifecycle label with how many items carry it.
type StateCount struct {
	Kind  string
	State string
	Count int
}

// ProgressRepo manages per-item scheduling state.
type ProgressRepo interface {
	// Create inserts a brand-new progress record.
	Create(ctx context.Context, p ProgressData) error

	// Get returns the record for one item, or nil if untracked.
	Get(ctx context.Context, learnerID, itemID string) (*ProgressData, error)

	// ExistsTerm reports whether the learner already tracks this term
	// under the given kind; used to dedupe deck imports.
	ExistsTerm(ctx context.Context, learnerID, term, kind string) (bool, error)

	// ApplyReview writes the updated record and appends its history
	// entry in a single transaction, so a concurrent review of the
	// same item can't interleave between the two writes.
	ApplyReview(ctx context.Context, p ProgressData, e ReviewEventData) error

	// ListDue returns records whose due time has passed, plus records
	// that have never been reviewed. Ordered by due time, oldest first.
	ListDue(ctx context.Context, learnerID string, now time.Time) ([]ProgressData, error)

	// CountByState aggregates item counts per (kind, state) for stats.
	CountByState(ctx context.Context, learnerID string) ([]StateCount, error)

	// DeleteAll removes every record for the learner. Returns the
	// number of rows removed.
	DeleteAll(ctx context.Context, learnerID string) (int, error)
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendReviewEvent records one processed review.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendImportEvent records one deck import.
	AppendImportEvent(ctx context.Context, data ImportEventData) error

	// RecentReviews returns the learner's most recent review events,
	// newest first.
	RecentReviews(ctx context.Context, learnerID string, limit int) ([]ReviewRecord, error)
}
