package review

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/parolabs/parola/internal/scheduler"
	"github.com/parolabs/parola/internal/store"
)

// mockProgressRepo is a minimal in-memory ProgressRepo for tests.
type mockProgressRepo struct {
	records map[string]store.ProgressData
	applied []store.ReviewEventData
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{records: make(map[string]store.ProgressData)}
}

func (m *mockProgressRepo) Create(_ context.Context, p store.ProgressData) error {
	m.records[p.ItemID] = p
	return nil
}

func (m *mockProgressRepo) Get(_ context.Context, _, itemID string) (*store.ProgressData, error) {
	p, ok := m.records[itemID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockProgressRepo) ExistsTerm(_ context.Context, _, _, _ string) (bool, error) {
	return false, nil
}

func (m *mockProgressRepo) ApplyReview(_ context.Context, p store.ProgressData, e store.ReviewEventData) error {
	m.records[p.ItemID] = p
	m.applied = append(m.applied, e)
	return nil
}

func (m *mockProgressRepo) ListDue(_ context.Context, _ string, _ time.Time) ([]store.ProgressData, error) {
	return nil, nil
}

func (m *mockProgressRepo) CountByState(_ context.Context, _ string) ([]store.StateCount, error) {
	return nil, nil
}

func (m *mockProgressRepo) DeleteAll(_ context.Context, _ string) (int, error) {
	n := len(m.records)
	m.records = make(map[string]store.ProgressData)
	return n, nil
}

func newTestService(repo *mockProgressRepo) *Service {
	return NewService(newTestDispatcher(), repo, zerolog.Nop())
}

func TestServiceAddItem_SeedsStepEase(t *testing.T) {
	repo := newMockProgressRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	p, err := svc.AddItem(ctx, "learner-1", KindVocabulary, SchedulerSteps, "katze", "cat")
	if err != nil {
		t.Fatal(err)
	}
	if p.Ease != scheduler.StartEase {
		t.Errorf("Ease = %v, want %v", p.Ease, scheduler.StartEase)
	}
	if p.ItemID == "" {
		t.Error("expected a generated item ID")
	}

	stored, ok := repo.records[p.ItemID]
	if !ok {
		t.Fatal("item not persisted")
	}
	if stored.Scheduler != string(SchedulerSteps) {
		t.Errorf("stored scheduler = %q, want steps", stored.Scheduler)
	}
}

func TestServiceAddItem_AdaptiveHasNoEase(t *testing.T) {
	repo := newMockProgressRepo()
	svc := newTestService(repo)

	p, err := svc.AddItem(context.Background(), "learner-1", KindGrammar, SchedulerAdaptive, "subjuntivo", "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Ease != 0 {
		t.Errorf("Ease = %v, want 0 on an adaptive item", p.Ease)
	}
}

func TestServiceSubmit_PersistsOutcomeAndHistory(t *testing.T) {
	repo := newMockProgressRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	now := time.Date(2025, 4, 2, 18, 30, 0, 0, time.UTC)

	p, err := svc.AddItem(ctx, "learner-1", KindVocabulary, SchedulerAdaptive, "la ventana", "the window")
	if err != nil {
		t.Fatal(err)
	}

	updated, entry, err := svc.Submit(ctx, "learner-1", p.ItemID, scheduler.RatingGood, now, 1800)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", updated.Repetitions)
	}

	stored := repo.records[p.ItemID]
	if stored.State != "reviewing" {
		t.Errorf("stored state = %q, want reviewing", stored.State)
	}
	if stored.IntervalDays != 3 {
		t.Errorf("stored interval = %d, want 3", stored.IntervalDays)
	}

	if len(repo.applied) != 1 {
		t.Fatalf("applied events = %d, want 1", len(repo.applied))
	}
	ev := repo.applied[0]
	if ev.EntryID != entry.EntryID {
		t.Errorf("event entry ID = %q, want %q", ev.EntryID, entry.EntryID)
	}
	if ev.Transition != "new→reviewing" {
		t.Errorf("event transition = %q, want new→reviewing", ev.Transition)
	}
	if ev.LatencyMs != 1800 {
		t.Errorf("event latency = %d, want 1800", ev.LatencyMs)
	}
}

func TestServiceSubmit_UnknownItem(t *testing.T) {
	repo := newMockProgressRepo()
	svc := newTestService(repo)

	_, _, err := svc.Submit(context.Background(), "learner-1", "missing", scheduler.RatingGood, time.Now(), 0)
	if err == nil {
		t.Fatal("expected error for untracked item")
	}
}

func TestServiceSubmit_FailedDispatchWritesNothing(t *testing.T) {
	repo := newMockProgressRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	p, err := svc.AddItem(ctx, "learner-1", KindVocabulary, SchedulerAdaptive, "el perro", "the dog")
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = svc.Submit(ctx, "learner-1", p.ItemID, scheduler.Rating(7), time.Now(), 0)
	if err == nil {
		t.Fatal("expected invalid-rating error")
	}
	if len(repo.applied) != 0 {
		t.Errorf("applied events = %d, want 0 after failed dispatch", len(repo.applied))
	}
	if repo.records[p.ItemID].Repetitions != 0 {
		t.Error("stored record mutated by failed dispatch")
	}
}
