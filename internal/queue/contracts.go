package queue

import (
	"math"
	"time"

	"github.com/parolabs/parola/internal/review"
	"github.com/parolabs/parola/internal/store"
)

// Partition normalizes stored due rows into the three collections the
// builder consumes, computing days overdue against now. Items that have
// never been reviewed count as due today with no stability measure.
func Partition(rows []store.ProgressData, now time.Time) (vocabulary, grammar, errs []Item) {
	now = now.UTC()
	for _, row := range rows {
		it := Item{
			Kind:        review.Kind(row.Kind),
			SourceID:    row.ItemID,
			Lapses:      row.Lapses,
			DaysOverdue: daysOverdue(row.DueAt, now),
			Metadata: map[string]string{
				"term":        row.Term,
				"translation": row.Translation,
			},
		}
		if row.Repetitions > 0 && row.Stability > 0 {
			s := row.Stability
			it.Stability = &s
		}

		switch it.Kind {
		case review.KindGrammar:
			grammar = append(grammar, it)
		case review.KindError:
			errs = append(errs, it)
		default:
			vocabulary = append(vocabulary, it)
		}
	}
	return vocabulary, grammar, errs
}

// daysOverdue floors so a partially elapsed future day reads negative
// (not yet due), not zero.
func daysOverdue(dueAt *time.Time, now time.Time) int {
	if dueAt == nil {
		return 0
	}
	return int(math.Floor(now.Sub(dueAt.UTC()).Hours() / 24))
}
