// Package config loads parola's YAML configuration: scheduler tunables
// and queue settings. Every field has a sensible default, so a missing
// config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/parolabs/parola/internal/queue"
	"github.com/parolabs/parola/internal/scheduler"
)

// Config is the root of the YAML file.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Queue     QueueConfig     `yaml:"queue"`
}

// SchedulerConfig groups the tunables of the two scheduling algorithms.
type SchedulerConfig struct {
	Adaptive AdaptiveConfig `yaml:"adaptive"`
	Steps    StepsConfig    `yaml:"steps"`
}

// AdaptiveConfig tunes the stability/difficulty scheduler.
type AdaptiveConfig struct {
	MaxStability float64 `yaml:"max_stability"`
}

// StepsConfig tunes the discrete-step scheduler. Steps are Go duration
// strings (e.g. "1m", "10m").
type StepsConfig struct {
	LearningSteps        []string `yaml:"learning_steps"`
	RelearningSteps      []string `yaml:"relearning_steps"`
	GraduateIntervalDays int      `yaml:"graduate_interval_days"`
	EasyIntervalDays     int      `yaml:"easy_interval_days"`
	MaxIntervalDays      int      `yaml:"max_interval_days"`
}

// QueueConfig tunes session building.
type QueueConfig struct {
	Mode string `yaml:"mode"`

	VocabularyPriority float64 `yaml:"vocabulary_priority"`
	GrammarPriority    float64 `yaml:"grammar_priority"`
	ErrorPriority      float64 `yaml:"error_priority"`

	VocabularySeconds int `yaml:"vocabulary_seconds"`
	GrammarSeconds    int `yaml:"grammar_seconds"`
	ErrorSeconds      int `yaml:"error_seconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	qc := queue.DefaultConfig()
	return Config{
		LogLevel: "info",
		Scheduler: SchedulerConfig{
			Adaptive: AdaptiveConfig{MaxStability: 365},
			Steps: StepsConfig{
				LearningSteps:        []string{"1m", "10m"},
				RelearningSteps:      []string{"10m"},
				GraduateIntervalDays: 1,
				EasyIntervalDays:     4,
				MaxIntervalDays:      36500,
			},
		},
		Queue: QueueConfig{
			Mode:               string(queue.ModeInterleave),
			VocabularyPriority: qc.VocabularyPriority,
			GrammarPriority:    qc.GrammarPriority,
			ErrorPriority:      qc.ErrorPriority,
			VocabularySeconds:  qc.VocabularySeconds,
			GrammarSeconds:     qc.GrammarSeconds,
			ErrorSeconds:       qc.ErrorSeconds,
		},
	}
}

// Load reads the YAML file at path, overlaying it onto the defaults.
// A missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the config file path in priority order:
// 1. PAROLA_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/parola/config.yaml
// 3. ~/.config/parola/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("PAROLA_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "parola", "config.yaml"), nil
}

// AdaptiveScheduler converts to the scheduler package's config type.
func (c Config) AdaptiveScheduler() scheduler.AdaptiveConfig {
	return scheduler.AdaptiveConfig{MaxStability: c.Scheduler.Adaptive.MaxStability}
}

// StepScheduler converts to the scheduler package's config type,
// parsing the duration strings.
func (c Config) StepScheduler() (scheduler.StepsConfig, error) {
	learning, err := parseSteps("scheduler.steps.learning_steps", c.Scheduler.Steps.LearningSteps)
	if err != nil {
		return scheduler.StepsConfig{}, err
	}
	relearning, err := parseSteps("scheduler.steps.relearning_steps", c.Scheduler.Steps.RelearningSteps)
	if err != nil {
		return scheduler.StepsConfig{}, err
	}
	return scheduler.StepsConfig{
		LearningSteps:        learning,
		RelearningSteps:      relearning,
		GraduateIntervalDays: c.Scheduler.Steps.GraduateIntervalDays,
		EasyIntervalDays:     c.Scheduler.Steps.EasyIntervalDays,
		MaxIntervalDays:      c.Scheduler.Steps.MaxIntervalDays,
	}, nil
}

// QueueBuilder converts to the queue package's config type.
func (c Config) QueueBuilder() queue.Config {
	return queue.Config{
		VocabularyPriority: c.Queue.VocabularyPriority,
		GrammarPriority:    c.Queue.GrammarPriority,
		ErrorPriority:      c.Queue.ErrorPriority,
		VocabularySeconds:  c.Queue.VocabularySeconds,
		GrammarSeconds:     c.Queue.GrammarSeconds,
		ErrorSeconds:       c.Queue.ErrorSeconds,
	}
}

// QueueMode returns the configured default ordering mode.
func (c Config) QueueMode() queue.Mode {
	switch queue.Mode(c.Queue.Mode) {
	case queue.ModePriority, queue.ModeBlocks, queue.ModeInterleave:
		return queue.Mode(c.Queue.Mode)
	default:
		return queue.ModeInterleave
	}
}

func parseSteps(path string, raw []string) ([]time.Duration, error) {
	steps := make([]time.Duration, 0, len(raw))
	for i, s := range raw {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: invalid duration %q: %w", path, i, s, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%s[%d]: duration must be > 0", path, i)
		}
		steps = append(steps, d)
	}
	return steps, nil
}
