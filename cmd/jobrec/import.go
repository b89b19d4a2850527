package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/corpus"
	"github.com/jonathan/job-recommender/internal/db"
	"github.com/jonathan/job-recommender/internal/localdb"
	"github.com/jonathan/job-recommender/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import jobs and résumés from JSON files into a database store",
	Long:  "Validates jobs and résumés JSON files against their schemas and writes them into the configured PostgreSQL or SQLite store.",
	RunE:  runImport,
}

var (
	importJobs    string
	importResumes string
)

func init() {
	importCmd.Flags().StringVar(&importJobs, "jobs", "", "Path to jobs JSON file (required)")
	importCmd.Flags().StringVar(&importResumes, "resumes", "", "Path to résumés JSON file")

	if err := importCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

// importTarget is a store that accepts companies, jobs and résumés.
type importTarget interface {
	UpsertCompany(ctx context.Context, c *types.Company) error
	InsertJob(ctx context.Context, job *types.JobPosting) error
	InsertResume(ctx context.Context, r *types.Resume) error
}

// writeStore is a database store that can be imported into and edited.
type writeStore interface {
	importTarget
	GetJobByID(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	DeactivateJob(ctx context.Context, id uuid.UUID) error
}

func runImport(cmd *cobra.Command, _ []string) error {
	jobs, err := corpus.LoadJobs(importJobs)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}
	var resumes []types.Resume
	if importResumes != "" {
		resumes, err = corpus.LoadResumes(importResumes)
		if err != nil {
			return fmt.Errorf("failed to load resumes: %w", err)
		}
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	target, release, err := openWriteStore(ctx, cfg, cmd.Name())
	if err != nil {
		return err
	}
	defer release()

	companies, err := importAll(ctx, target, jobs, resumes)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d companies, %d jobs, %d resumes into %s store\n",
		companies, len(jobs), len(resumes), cfg.Store)
	return nil
}

// openWriteStore opens the configured database store for the named command.
// The file store is read-only and is rejected.
func openWriteStore(ctx context.Context, cfg *config.Config, command string) (writeStore, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.StoreSQLite:
		lite, err := localdb.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return lite, func() { _ = lite.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%s requires a postgres or sqlite store, got %q", command, cfg.Store)
	}
}

// importAll writes companies first, then jobs, then résumés in file order.
// It returns the number of distinct companies written.
func importAll(ctx context.Context, target importTarget, jobs []types.JobPosting, resumes []types.Resume) (int, error) {
	seen := make(map[uuid.UUID]bool)
	for i := range jobs {
		c := jobs[i].Company
		if c == nil || seen[c.ID] {
			continue
		}
		if err := target.UpsertCompany(ctx, c); err != nil {
			return 0, fmt.Errorf("failed to import company %q: %w", c.Name, err)
		}
		seen[c.ID] = true
	}

	for i := range jobs {
		if err := target.InsertJob(ctx, &jobs[i]); err != nil {
			return 0, fmt.Errorf("failed to import job %q: %w", jobs[i].Title, err)
		}
	}

	for i := range resumes {
		if err := target.InsertResume(ctx, &resumes[i]); err != nil {
			return 0, fmt.Errorf("failed to import resume %q: %w", resumes[i].FileName, err)
		}
	}
	return len(seen), nil
}
