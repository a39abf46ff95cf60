package queue

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/parolabs/parola/internal/review"
	"github.com/parolabs/parola/internal/store"
)

func fixedBuilder(seed int64) *Builder {
	return NewBuilder(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func makeItems(kind review.Kind, n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Kind:     kind,
			SourceID: fmt.Sprintf("%s-%d", kind, i),
		}
	}
	return items
}

func TestBuild_Interleave_NoAdjacentKinds(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 5)
	grammar := makeItems(review.KindGrammar, 5)
	errs := makeItems(review.KindError, 5)

	for seed := int64(0); seed < 10; seed++ {
		b := fixedBuilder(seed)
		out := b.Build(vocab, grammar, errs, ModeInterleave, 0)

		if len(out) != 15 {
			t.Fatalf("seed %d: len = %d, want 15", seed, len(out))
		}
		for i := 1; i < len(out); i++ {
			if out[i].Kind == out[i-1].Kind {
				t.Errorf("seed %d: positions %d and %d share kind %s", seed, i-1, i, out[i].Kind)
			}
		}
	}
}

func TestBuild_Interleave_UnevenGroups(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 6)
	errs := makeItems(review.KindError, 2)

	b := fixedBuilder(1)
	out := b.Build(vocab, nil, errs, ModeInterleave, 0)

	if len(out) != 8 {
		t.Fatalf("len = %d, want 8", len(out))
	}
	// Once the error group runs dry, the tail is all vocabulary; until
	// then no two consecutive items may share a kind.
	errsSeen := 0
	for i := 1; i < len(out); i++ {
		if out[i-1].Kind == review.KindError {
			errsSeen++
		}
		if errsSeen < 2 && out[i].Kind == out[i-1].Kind {
			t.Errorf("positions %d and %d share kind %s while errors remain", i-1, i, out[i].Kind)
		}
	}
}

func TestBuild_Priority_Deterministic(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 8)
	grammar := makeItems(review.KindGrammar, 4)
	errs := makeItems(review.KindError, 3)
	for i := range vocab {
		vocab[i].DaysOverdue = i
		vocab[i].Lapses = i % 3
	}

	first := fixedBuilder(1).Build(vocab, grammar, errs, ModePriority, 0)
	second := fixedBuilder(99).Build(vocab, grammar, errs, ModePriority, 0)

	if !reflect.DeepEqual(first, second) {
		t.Error("priority mode output differs across calls with identical input")
	}
	for i := 1; i < len(first); i++ {
		if first[i].Score > first[i-1].Score {
			t.Errorf("position %d: score %v > previous %v", i, first[i].Score, first[i-1].Score)
		}
	}
}

func TestBuild_Blocks_KindsClusterByBand(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 3)
	grammar := makeItems(review.KindGrammar, 3)
	errs := makeItems(review.KindError, 3)

	out := fixedBuilder(1).Build(vocab, grammar, errs, ModeBlocks, 0)

	want := []review.Kind{
		review.KindError, review.KindError, review.KindError,
		review.KindGrammar, review.KindGrammar, review.KindGrammar,
		review.KindVocabulary, review.KindVocabulary, review.KindVocabulary,
	}
	for i, k := range want {
		if out[i].Kind != k {
			t.Errorf("position %d: kind = %s, want %s", i, out[i].Kind, k)
		}
	}
}

func TestBuild_TimeBudgetTruncation(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 100)

	out := fixedBuilder(1).Build(vocab, nil, nil, ModePriority, 60)

	if len(out) > 7 {
		t.Errorf("len = %d, want at most 7 items in a 60s budget", len(out))
	}
	total := 0
	for _, it := range out {
		total += it.EstimatedSeconds
	}
	if total > 60 {
		t.Errorf("total estimate = %ds, want <= 60", total)
	}
}

func TestBuild_ZeroBudgetMeansUnlimited(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 20)

	out := fixedBuilder(1).Build(vocab, nil, nil, ModePriority, 0)
	if len(out) != 20 {
		t.Errorf("len = %d, want 20", len(out))
	}
}

func TestBuild_SkipsItemsWithoutSourceID(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 3)
	vocab[1].SourceID = ""

	out := fixedBuilder(1).Build(vocab, nil, nil, ModePriority, 0)
	if len(out) != 2 {
		t.Errorf("len = %d, want 2 (malformed item skipped)", len(out))
	}
}

func TestBuild_SkipsUnknownKinds(t *testing.T) {
	vocab := makeItems(review.KindVocabulary, 2)
	vocab = append(vocab, Item{Kind: review.Kind("pronunciation"), SourceID: "p-0"})
	grammar := makeItems(review.KindGrammar, 2)

	// Interleave must terminate: a kind outside the rotation would
	// otherwise never drain its group.
	out := fixedBuilder(1).Build(vocab, grammar, nil, ModeInterleave, 0)
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4 (unknown-kind item skipped)", len(out))
	}
	for _, it := range out {
		if it.Kind == review.Kind("pronunciation") {
			t.Errorf("unknown kind %s leaked into the queue", it.Kind)
		}
	}
}

func TestScore_Table(t *testing.T) {
	cfg := DefaultConfig()
	stab := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		item Item
		want float64
	}{
		{
			name: "new vocabulary gets flat fragility bonus",
			item: Item{Kind: review.KindVocabulary, SourceID: "v"},
			want: 10 + 10,
		},
		{
			name: "overdue bonus accrues per day",
			item: Item{Kind: review.KindVocabulary, SourceID: "v", DaysOverdue: 4},
			want: 10 + 12 + 10,
		},
		{
			name: "overdue bonus caps at 30",
			item: Item{Kind: review.KindVocabulary, SourceID: "v", DaysOverdue: 50},
			want: 10 + 30 + 10,
		},
		{
			name: "fragile error item",
			item: Item{Kind: review.KindError, SourceID: "e", Stability: stab(3)},
			want: 30 + 17,
		},
		{
			name: "stable item earns no fragility bonus",
			item: Item{Kind: review.KindGrammar, SourceID: "g", Stability: stab(25)},
			want: 20,
		},
		{
			name: "lapse bonus caps at 10",
			item: Item{Kind: review.KindGrammar, SourceID: "g", Stability: stab(25), Lapses: 9},
			want: 20 + 10,
		},
		{
			name: "all bonuses stack",
			item: Item{Kind: review.KindError, SourceID: "e", DaysOverdue: 30, Stability: stab(0.5), Lapses: 8},
			want: 30 + 30 + 19.5 + 10,
		},
		{
			name: "not-yet-due item earns no overdue bonus",
			item: Item{Kind: review.KindVocabulary, SourceID: "v", DaysOverdue: -2, Stability: stab(22)},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.score(tt.item)
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_CapsAtHundred(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ErrorPriority = 70

	s := 0.5
	got := cfg.score(Item{Kind: review.KindError, SourceID: "e", DaysOverdue: 30, Stability: &s, Lapses: 8})
	if got != 100 {
		t.Errorf("score = %v, want capped at 100", got)
	}
}

func TestPartition_SplitsAndNormalizes(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -3)

	rows := []store.ProgressData{
		{ItemID: "a", Kind: "vocabulary", Term: "haus", Repetitions: 2, Stability: 4.5, DueAt: &overdue},
		{ItemID: "b", Kind: "grammar", Term: "dative case"},
		{ItemID: "c", Kind: "error", Term: "ser vs estar", Lapses: 2, DueAt: &now},
	}

	vocab, grammar, errs := Partition(rows, now)

	if len(vocab) != 1 || len(grammar) != 1 || len(errs) != 1 {
		t.Fatalf("partition sizes = %d/%d/%d, want 1/1/1", len(vocab), len(grammar), len(errs))
	}
	if vocab[0].Stability == nil || *vocab[0].Stability != 4.5 {
		t.Errorf("vocab stability = %v, want 4.5", vocab[0].Stability)
	}
	if vocab[0].DaysOverdue != 3 {
		t.Errorf("vocab DaysOverdue = %d, want 3", vocab[0].DaysOverdue)
	}
	if grammar[0].Stability != nil {
		t.Error("never-reviewed grammar item should have no stability measure")
	}
	if grammar[0].DaysOverdue != 0 {
		t.Errorf("grammar DaysOverdue = %d, want 0", grammar[0].DaysOverdue)
	}
	if errs[0].Metadata["term"] != "ser vs estar" {
		t.Errorf("metadata term = %q", errs[0].Metadata["term"])
	}
}

func TestPartition_NotYetDueReadsNegative(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	future := now.Add(12 * time.Hour)

	vocab, _, _ := Partition([]store.ProgressData{
		{ItemID: "a", Kind: "vocabulary", DueAt: &future},
	}, now)

	if len(vocab) != 1 {
		t.Fatalf("len = %d, want 1", len(vocab))
	}
	if vocab[0].DaysOverdue != -1 {
		t.Errorf("DaysOverdue = %d, want -1 for an item due in half a day", vocab[0].DaysOverdue)
	}
}
