package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Mark a job inactive so it is no longer recommended",
	Long:  "Marks a job in the configured PostgreSQL or SQLite store inactive. Inactive jobs stay in the store but are skipped by recommend, insights and top-skills.",
	RunE:  runDeactivate,
}

var deactivateJobID string

func init() {
	deactivateCmd.Flags().StringVar(&deactivateJobID, "job", "", "Job ID (required)")

	if err := deactivateCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(deactivateCmd)
}

func runDeactivate(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(deactivateJobID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, release, err := openWriteStore(ctx, cfg, cmd.Name())
	if err != nil {
		return err
	}
	defer release()

	job, err := store.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job %s not found", jobID)
	}
	if err := store.DeactivateJob(ctx, jobID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deactivated %s at %s\n", job.Title, job.CompanyName())
	return nil
}
