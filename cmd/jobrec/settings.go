package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/corpus"
	"github.com/jonathan/job-recommender/internal/db"
	"github.com/jonathan/job-recommender/internal/localdb"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/jonathan/job-recommender/internal/profile"
	"github.com/jonathan/job-recommender/internal/recommend"
)

// resolveConfig layers the config file, environment and flags, then fills
// defaults and validates the result.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv(os.Getenv)
	applyFlags(cfg)
	if cfg.Store == "" {
		cfg.Store = inferStore(cfg)
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func applyFlags(cfg *config.Config) {
	if storeName != "" {
		cfg.Store = storeName
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	if jobsFile != "" {
		cfg.JobsFile = jobsFile
	}
	if resumesFile != "" {
		cfg.ResumesFile = resumesFile
	}
	if verbose {
		cfg.Verbose = true
	}
}

// inferStore picks a backend when none is named: a jobs file wins over a
// database URL, and SQLite is the fallback.
func inferStore(cfg *config.Config) string {
	switch {
	case cfg.JobsFile != "":
		return config.StoreFile
	case cfg.DatabaseURL != "":
		return config.StorePostgres
	default:
		return config.StoreSQLite
	}
}

// backend is what the recommendation service reads from.
type backend interface {
	recommend.JobCorpus
	profile.Source
}

// openBackend opens the configured store. The returned func releases it.
func openBackend(ctx context.Context, cfg *config.Config) (backend, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.StoreSQLite:
		lite, err := localdb.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return lite, func() { _ = lite.Close() }, nil
	case config.StoreFile:
		store, err := corpus.Load(cfg.JobsFile, cfg.ResumesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load corpus: %w", err)
		}
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return observability.NewLogger(w, cfg.Verbose)
}

func newService(store backend, cfg *config.Config, logger *slog.Logger) *recommend.Service {
	return recommend.NewService(store, store, recommend.Options{
		DefaultLimit: cfg.DefaultLimit,
		ScoreWorkers: cfg.ScoreWorkers,
		FetchTimeout: cfg.Timeout(),
		Logger:       logger,
	})
}
