package deck

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parolabs/parola/internal/review"
	"github.com/parolabs/parola/internal/scheduler"
	"github.com/parolabs/parola/internal/store"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid deck",
			raw:  `{"name":"A1 nouns","cards":[{"term":"das Haus","translation":"house"}]}`,
		},
		{
			name: "notes allowed",
			raw:  `{"name":"verbs","cards":[{"term":"gehen","translation":"to go","notes":"irregular"}]}`,
		},
		{
			name:    "missing name",
			raw:     `{"cards":[{"term":"gehen"}]}`,
			wantErr: true,
		},
		{
			name:    "empty cards",
			raw:     `{"name":"empty","cards":[]}`,
			wantErr: true,
		},
		{
			name:    "empty term",
			raw:     `{"name":"bad","cards":[{"term":""}]}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			raw:     `{"name":"bad","cards":[{"term":"x"}],"format":2}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			raw:     `name: yaml-deck`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, d.Name)
			assert.NotEmpty(t, d.Cards)
		})
	}
}

// stubStore backs the importer tests with an in-memory ProgressRepo and
// EventRepo.
type stubStore struct {
	created []store.ProgressData
	terms   map[string]bool
	imports []store.ImportEventData
}

func newStubStore() *stubStore {
	return &stubStore{terms: make(map[string]bool)}
}

func (s *stubStore) Create(_ context.Context, p store.ProgressData) error {
	s.created = append(s.created, p)
	s.terms[p.Term] = true
	return nil
}

func (s *stubStore) Get(_ context.Context, _, _ string) (*store.ProgressData, error) {
	return nil, nil
}

func (s *stubStore) ExistsTerm(_ context.Context, _, term, _ string) (bool, error) {
	return s.terms[term], nil
}

func (s *stubStore) ApplyReview(_ context.Context, _ store.ProgressData, _ store.ReviewEventData) error {
	return nil
}

func (s *stubStore) ListDue(_ context.Context, _ string, _ time.Time) ([]store.ProgressData, error) {
	return nil, nil
}

func (s *stubStore) CountByState(_ context.Context, _ string) ([]store.StateCount, error) {
	return nil, nil
}

func (s *stubStore) DeleteAll(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (s *stubStore) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
	return nil
}

func (s *stubStore) AppendImportEvent(_ context.Context, data store.ImportEventData) error {
	s.imports = append(s.imports, data)
	return nil
}

func (s *stubStore) RecentReviews(_ context.Context, _ string, _ int) ([]store.ReviewRecord, error) {
	return nil, nil
}

func newTestImporter(st *stubStore) *Importer {
	dispatcher := review.NewDispatcher(
		scheduler.NewAdaptive(scheduler.DefaultAdaptiveConfig()),
		scheduler.NewSteps(scheduler.DefaultStepsConfig()),
	)
	svc := review.NewService(dispatcher, st, zerolog.Nop())
	return NewImporter(svc, st, st, zerolog.Nop())
}

func TestImport_CreatesStepItems(t *testing.T) {
	st := newStubStore()
	im := newTestImporter(st)

	raw := `{"name":"A1 nouns","cards":[{"term":"das Haus","translation":"house"},{"term":"die Katze","translation":"cat"}]}`
	res, err := im.Import(context.Background(), "learner-1", []byte(raw), "a1.json")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 0, res.Skipped)
	assert.NotEmpty(t, res.BatchID)

	require.Len(t, st.created, 2)
	for _, p := range st.created {
		assert.Equal(t, string(review.SchedulerSteps), p.Scheduler)
		assert.Equal(t, string(review.KindVocabulary), p.Kind)
		assert.Equal(t, scheduler.StartEase, p.Ease)
	}

	require.Len(t, st.imports, 1)
	assert.Equal(t, "A1 nouns", st.imports[0].DeckName)
	assert.Equal(t, "a1.json", st.imports[0].SourceFile)
}

func TestImport_SkipsExistingTerms(t *testing.T) {
	st := newStubStore()
	st.terms["das Haus"] = true
	im := newTestImporter(st)

	raw := `{"name":"A1 nouns","cards":[{"term":"das Haus"},{"term":"die Katze"}]}`
	res, err := im.Import(context.Background(), "learner-1", []byte(raw), "")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, st.created, 1)
	assert.Equal(t, "die Katze", st.created[0].Term)
}

func TestImport_InvalidPayloadWritesNothing(t *testing.T) {
	st := newStubStore()
	im := newTestImporter(st)

	_, err := im.Import(context.Background(), "learner-1", []byte(`{"cards":[]}`), "")
	require.Error(t, err)
	assert.Empty(t, st.created)
	assert.Empty(t, st.imports)
}
