package deck

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/parolabs/parola/internal/review"
	"github.com/parolabs/parola/internal/store"
)

// Importer creates step-scheduled vocabulary items from a parsed deck.
type Importer struct {
	reviews  *review.Service
	progress store.ProgressRepo
	events   store.EventRepo
	log      zerolog.Logger
}

// NewImporter creates an importer.
func NewImporter(reviews *review.Service, progress store.ProgressRepo, events store.EventRepo, log zerolog.Logger) *Importer {
	return &Importer{reviews: reviews, progress: progress, events: events, log: log}
}

// Result summarizes one import.
type Result struct {
	BatchID  string
	DeckName string
	Imported int
	Skipped  int
}

// Import validates and stores a deck payload. A term the learner
// already tracks is skipped rather than re-created, so re-importing a
// deck never resets scheduling state. Each import appends one audit
// event.
func (im *Importer) Import(ctx context.Context, learnerID string, raw []byte, sourceFile string) (Result, error) {
	d, err := Parse(raw)
	if err != nil {
		return Result{}, err
	}

	res := Result{BatchID: uuid.NewString(), DeckName: d.Name}
	for _, card := range d.Cards {
		exists, err := im.progress.ExistsTerm(ctx, learnerID, card.Term, string(review.KindVocabulary))
		if err != nil {
			return Result{}, err
		}
		if exists {
			res.Skipped++
			continue
		}
		if _, err := im.reviews.AddItem(ctx, learnerID, review.KindVocabulary, review.SchedulerSteps, card.Term, card.Translation); err != nil {
			return Result{}, err
		}
		res.Imported++
	}

	err = im.events.AppendImportEvent(ctx, store.ImportEventData{
		BatchID:       res.BatchID,
		LearnerID:     learnerID,
		DeckName:      d.Name,
		SourceFile:    sourceFile,
		ImportedCount: res.Imported,
		SkippedCount:  res.Skipped,
	})
	if err != nil {
		return Result{}, err
	}

	im.log.Info().
		Str("deck", d.Name).
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Msg("deck imported")
	return res, nil
}
