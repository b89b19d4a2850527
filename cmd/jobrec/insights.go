package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/observability"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show career insights for a user",
	Long:  "Derives the user's experience level and industries from their active résumé and compares their skills with the most requested skills in active jobs.",
	RunE:  runInsights,
}

var (
	insightsUser string
	insightsJSON bool
)

func init() {
	insightsCmd.Flags().StringVarP(&insightsUser, "user", "u", "", "User ID (UUID, required)")
	insightsCmd.Flags().BoolVar(&insightsJSON, "json", false, "Print insights as JSON")

	if err := insightsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(insightsUser)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", insightsUser, err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, release, err := openBackend(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()

	svc := newService(store, cfg, newLogger(cmd.ErrOrStderr(), cfg))
	insights, err := svc.Insights(cmd.Context(), userID)
	if err != nil {
		return fmt.Errorf("failed to build insights: %w", err)
	}
	if insights == nil {
		return fmt.Errorf("no active resume found for user %s", userID)
	}

	if insightsJSON {
		return writeJSON(cmd, insights)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintInsights(insights)
	return nil
}
