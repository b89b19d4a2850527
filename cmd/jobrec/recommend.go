package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/experience"
	"github.com/jonathan/job-recommender/internal/export"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/jonathan/job-recommender/internal/profile"
	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank active jobs for a user",
	Long: "Ranks active job postings against the user's active résumé. When the user has no résumé, " +
		"or a data source fails, the most recently posted jobs are shown instead.",
	RunE: runRecommend,
}

var (
	recommendUser    string
	recommendResume  string
	recommendLimit   int
	recommendExplain bool
	recommendJSON    bool
	recommendXLSX    string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendUser, "user", "u", "", "User ID (UUID)")
	recommendCmd.Flags().StringVar(&recommendResume, "resume", "", "Path to a parsed résumé JSON file to rank against instead of a stored user")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Number of jobs to return (default from config)")
	recommendCmd.Flags().BoolVar(&recommendExplain, "explain", false, "Show per-factor scores")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print results as JSON")
	recommendCmd.Flags().StringVar(&recommendXLSX, "xlsx", "", "Also write an Excel report to this path")

	recommendCmd.MarkFlagsOneRequired("user", "resume")
	recommendCmd.MarkFlagsMutuallyExclusive("user", "resume")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, release, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	svc := newService(store, cfg, newLogger(cmd.ErrOrStderr(), cfg))
	limit := cfg.ClampLimit(recommendLimit)
	printer := observability.NewPrinter(cmd.OutOrStdout())

	var (
		result recommend.Result
		label  string
	)
	if recommendResume != "" {
		parsed, err := experience.LoadParsedResume(recommendResume)
		if err != nil {
			return fmt.Errorf("failed to load resume: %w", err)
		}
		p := profile.FromParsedResume(parsed)
		if cfg.Verbose && !recommendJSON {
			printer.PrintProfile(p)
		}
		scores, err := svc.RankForProfile(ctx, p, limit)
		if err != nil {
			return fmt.Errorf("failed to rank jobs: %w", err)
		}
		result = recommend.Result{Jobs: jobsOf(scores), Scores: scores}
		label = recommendResume
	} else {
		userID, err := uuid.Parse(recommendUser)
		if err != nil {
			return fmt.Errorf("invalid user ID %q: %w", recommendUser, err)
		}
		result = svc.Recommend(ctx, userID, limit)
		label = userID.String()
	}

	if recommendJSON {
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	} else {
		printer.PrintRecommendations(&result, recommendExplain)
	}

	if recommendXLSX != "" {
		path, err := export.ExportRecommendations(&result, label, time.Now(), recommendXLSX)
		if err != nil {
			return fmt.Errorf("failed to export recommendations: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Report: %s\n", path)
	}
	return nil
}

func jobsOf(scores []types.JobScore) []types.JobPosting {
	jobs := make([]types.JobPosting, len(scores))
	for i, s := range scores {
		jobs[i] = s.Job
	}
	return jobs
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
