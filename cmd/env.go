package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/parolabs/parola/internal/config"
	"github.com/parolabs/parola/internal/deck"
	"github.com/parolabs/parola/internal/logx"
	"github.com/parolabs/parola/internal/review"
	"github.com/parolabs/parola/internal/scheduler"
	"github.com/parolabs/parola/internal/store"
)

// appEnv holds the wired-up dependencies every subcommand needs: the
// loaded config, the open store, and the services built on top.
type appEnv struct {
	cfg      config.Config
	store    *store.Store
	log      zerolog.Logger
	reviews  *review.Service
	importer *deck.Importer
	learner  string
}

// openEnv loads config, opens the store, and builds the service graph.
// The caller must call Close.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	log := logx.Default(level)

	stepsCfg, err := cfg.StepScheduler()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	dispatcher := review.NewDispatcher(
		scheduler.NewAdaptive(cfg.AdaptiveScheduler()),
		scheduler.NewSteps(stepsCfg),
	)
	reviews := review.NewService(dispatcher, st.ProgressRepo(), log)
	importer := deck.NewImporter(reviews, st.ProgressRepo(), st.EventRepo(), log)

	learner, _ := cmd.Flags().GetString("learner")
	if learner == "" {
		learner = "default"
	}

	return &appEnv{
		cfg:      cfg,
		store:    st,
		log:      log,
		reviews:  reviews,
		importer: importer,
		learner:  learner,
	}, nil
}

func (e *appEnv) Close() error {
	return e.store.Close()
}
