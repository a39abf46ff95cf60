// Package queue turns the day's due items — vocabulary, grammar
// concepts, and recorded errors — into one ranked, optionally
// time-boxed practice session.
package queue

import (
	"github.com/parolabs/parola/internal/review"
)

// Config holds the priority bands and per-kind time estimates used to
// score and budget a session. Error items sit in the highest band by
// convention: a recorded error is the most fragile kind of knowledge.
type Config struct {
	VocabularyPriority float64
	GrammarPriority    float64
	ErrorPriority      float64

	// Coarse fixed time estimates per item, not measured values.
	VocabularySeconds int
	GrammarSeconds    int
	ErrorSeconds      int
}

// DefaultConfig returns the standard bands and estimates.
func DefaultConfig() Config {
	return Config{
		VocabularyPriority: 10,
		GrammarPriority:    20,
		ErrorPriority:      30,
		VocabularySeconds:  8,
		GrammarSeconds:     180,
		ErrorSeconds:       15,
	}
}

const (
	maxScore        = 100
	overdueBonusCap = 30
	overduePerDay   = 3
	fragilityBase   = 20
	newItemBonus    = 10
	lapseBonusCap   = 10
	lapseBonusStep  = 2
)

// Item is one due item handed in by a read contract. Stability is nil
// when the source domain has no stability-like measure for the item
// (brand new, or a domain that tracks a score instead).
type Item struct {
	Kind        review.Kind
	SourceID    string
	Stability   *float64
	Lapses      int
	DaysOverdue int // negative = not yet due (lookahead window)
	Metadata    map[string]string
}

// QueueItem is one slot of a built session. It is output-only and never
// persisted; SourceID and Metadata pass through from the fetch results
// unchanged.
type QueueItem struct {
	Kind             review.Kind
	SourceID         string
	Score            float64
	DaysOverdue      int
	EstimatedSeconds int
	Metadata         map[string]string
}

// score computes the 0-100 urgency of one item.
func (c Config) score(it Item) float64 {
	s := c.basePriority(it.Kind)

	if it.DaysOverdue > 0 {
		bonus := float64(it.DaysOverdue * overduePerDay)
		if bonus > overdueBonusCap {
			bonus = overdueBonusCap
		}
		s += bonus
	}

	if it.Stability != nil && *it.Stability > 0 {
		if f := fragilityBase - *it.Stability; f > 0 {
			s += f
		}
	} else {
		s += newItemBonus
	}

	lapse := float64(it.Lapses * lapseBonusStep)
	if lapse > lapseBonusCap {
		lapse = lapseBonusCap
	}
	s += lapse

	if s > maxScore {
		s = maxScore
	}
	return s
}

func (c Config) basePriority(k review.Kind) float64 {
	switch k {
	case review.KindError:
		return c.ErrorPriority
	case review.KindGrammar:
		return c.GrammarPriority
	default:
		return c.VocabularyPriority
	}
}

func (c Config) estimatedSeconds(k review.Kind) int {
	switch k {
	case review.KindError:
		return c.ErrorSeconds
	case review.KindGrammar:
		return c.GrammarSeconds
	default:
		return c.VocabularySeconds
	}
}
