package queue

import (
	"math/rand"
	"sort"
	"time"

	"github.com/parolabs/parola/internal/review"
)

// Mode selects how a built session is ordered.
type Mode string

const (
	// ModePriority orders strictly by descending score.
	ModePriority Mode = "priority"
	// ModeBlocks also orders by descending score; the per-kind priority
	// bands make same-kind items cluster naturally, so no extra
	// shuffling is needed.
	ModeBlocks Mode = "blocks"
	// ModeInterleave round-robins across kinds so consecutive items
	// differ in kind — the research-preferred default.
	ModeInterleave Mode = "interleave"
)

// kindOrder is the fixed grouping order before any shuffle.
var kindOrder = []review.Kind{review.KindVocabulary, review.KindGrammar, review.KindError}

// Builder scores, orders, and budgets due items into a session queue.
// It is read-only over its inputs and safe to invoke concurrently for
// different learners.
type Builder struct {
	cfg Config
	rng *rand.Rand
}

// NewBuilder creates a builder. rng drives the kind shuffle in
// interleave mode; pass a fixed-seed source for reproducible sessions,
// or nil for a time-seeded one.
func NewBuilder(cfg Config, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{cfg: cfg, rng: rng}
}

// Build merges the three due collections into one ranked queue.
// budgetSeconds <= 0 means no time budget. Items with no source ID or
// an unrecognized kind are skipped rather than failing the whole build:
// one broken row must not block the learner's session.
func (b *Builder) Build(vocabulary, grammar, errs []Item, mode Mode, budgetSeconds int) []QueueItem {
	scored := make([]QueueItem, 0, len(vocabulary)+len(grammar)+len(errs))
	for _, group := range [][]Item{vocabulary, grammar, errs} {
		for _, it := range group {
			if it.SourceID == "" || !knownKind(it.Kind) {
				continue
			}
			scored = append(scored, QueueItem{
				Kind:             it.Kind,
				SourceID:         it.SourceID,
				Score:            b.cfg.score(it),
				DaysOverdue:      it.DaysOverdue,
				EstimatedSeconds: b.cfg.estimatedSeconds(it.Kind),
				Metadata:         it.Metadata,
			})
		}
	}

	sortByScore(scored)

	var ordered []QueueItem
	if mode == ModeInterleave {
		ordered = b.interleave(scored)
	} else {
		ordered = scored
	}

	if budgetSeconds > 0 {
		ordered = truncateToBudget(ordered, budgetSeconds)
	}
	return ordered
}

// knownKind reports whether the kind has a priority band and an
// interleave group. Anything else would never drain from the
// round-robin rotation.
func knownKind(k review.Kind) bool {
	switch k {
	case review.KindVocabulary, review.KindGrammar, review.KindError:
		return true
	}
	return false
}

// sortByScore orders by descending score with a deterministic tie-break
// so that non-random modes return byte-identical output across calls.
func sortByScore(items []QueueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return items[i].SourceID < items[j].SourceID
	})
}

// interleave groups items by kind (each group already score-ordered),
// shuffles the kind order once, then takes one item per non-empty kind
// in that order until every group is exhausted. No two consecutive
// items share a kind while another kind still has items remaining.
func (b *Builder) interleave(items []QueueItem) []QueueItem {
	groups := make(map[review.Kind][]QueueItem, len(kindOrder))
	for _, it := range items {
		groups[it.Kind] = append(groups[it.Kind], it)
	}

	order := make([]review.Kind, len(kindOrder))
	copy(order, kindOrder)
	b.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	result := make([]QueueItem, 0, len(items))
	for len(result) < len(items) {
		for _, k := range order {
			if len(groups[k]) == 0 {
				continue
			}
			result = append(result, groups[k][0])
			groups[k] = groups[k][1:]
		}
	}
	return result
}

// truncateToBudget walks the ordered queue and cuts it at the first
// item whose estimate would push the running total past the budget.
// Items past the cutoff are dropped, not deferred.
func truncateToBudget(items []QueueItem, budgetSeconds int) []QueueItem {
	total := 0
	for i, it := range items {
		if total+it.EstimatedSeconds > budgetSeconds {
			return items[:i]
		}
		total += it.EstimatedSeconds
	}
	return items
}
