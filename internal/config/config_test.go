package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parolabs/parola/internal/queue"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scheduler.Adaptive.MaxStability != 365 {
		t.Errorf("MaxStability = %v, want 365", cfg.Scheduler.Adaptive.MaxStability)
	}
	if cfg.QueueMode() != queue.ModeInterleave {
		t.Errorf("QueueMode = %v, want interleave", cfg.QueueMode())
	}
}

func TestLoad_OverlaysOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log_level: debug
scheduler:
  adaptive:
    max_stability: 180
  steps:
    learning_steps: ["30s", "5m", "30m"]
queue:
  mode: priority
  grammar_seconds: 120
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Scheduler.Adaptive.MaxStability != 180 {
		t.Errorf("MaxStability = %v, want 180", cfg.Scheduler.Adaptive.MaxStability)
	}
	if cfg.QueueMode() != queue.ModePriority {
		t.Errorf("QueueMode = %v, want priority", cfg.QueueMode())
	}
	if cfg.Queue.GrammarSeconds != 120 {
		t.Errorf("GrammarSeconds = %d, want 120", cfg.Queue.GrammarSeconds)
	}
	// Untouched fields keep their defaults.
	if cfg.Queue.VocabularySeconds != 8 {
		t.Errorf("VocabularySeconds = %d, want default 8", cfg.Queue.VocabularySeconds)
	}

	sc, err := cfg.StepScheduler()
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Duration{30 * time.Second, 5 * time.Minute, 30 * time.Minute}
	if len(sc.LearningSteps) != len(want) {
		t.Fatalf("LearningSteps = %v, want %v", sc.LearningSteps, want)
	}
	for i := range want {
		if sc.LearningSteps[i] != want[i] {
			t.Errorf("LearningSteps[%d] = %v, want %v", i, sc.LearningSteps[i], want[i])
		}
	}
}

func TestStepScheduler_RejectsBadDurations(t *testing.T) {
	cfg := Default()
	cfg.Scheduler.Steps.LearningSteps = []string{"1m", "soon"}

	if _, err := cfg.StepScheduler(); err == nil {
		t.Error("expected error for unparseable duration")
	}

	cfg.Scheduler.Steps.LearningSteps = []string{"-1m"}
	if _, err := cfg.StepScheduler(); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestQueueMode_UnknownFallsBackToInterleave(t *testing.T) {
	cfg := Default()
	cfg.Queue.Mode = "shuffled"
	if cfg.QueueMode() != queue.ModeInterleave {
		t.Errorf("QueueMode = %v, want interleave fallback", cfg.QueueMode())
	}
}
