package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/observability"
)

var topSkillsCmd = &cobra.Command{
	Use:   "top-skills",
	Short: "List the most requested skills across active jobs",
	RunE:  runTopSkills,
}

var (
	topSkillsLimit int
	topSkillsJSON  bool
)

func init() {
	topSkillsCmd.Flags().IntVarP(&topSkillsLimit, "limit", "n", 10, "Number of skills to show (0 for all)")
	topSkillsCmd.Flags().BoolVar(&topSkillsJSON, "json", false, "Print skills as JSON")

	rootCmd.AddCommand(topSkillsCmd)
}

func runTopSkills(cmd *cobra.Command, _ []string) error {
	if topSkillsLimit < 0 {
		return fmt.Errorf("--limit must be non-negative")
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

	skills, err := newService(store, cfg, newLogger(cmd.ErrOrStderr(), cfg)).TopSkills(cmd.Context(), topSkillsLimit)
	if err != nil {
		return err
	}

	if topSkillsJSON {
		return writeJSON(cmd, skills)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTopSkills(skills)
	return nil
}
