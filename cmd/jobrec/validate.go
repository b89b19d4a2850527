package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/experience"
	"github.com/jonathan/job-recommender/internal/schemas"
	embedded "github.com/jonathan/job-recommender/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate input files against their JSON schemas",
	Long:  "Validates jobs and résumé files against the built-in schemas, or any document against a JSON Schema file given with --schema and --doc.",
	RunE:  runValidate,
}

var (
	validateJobs    string
	validateResumes string
	validateResume  string
	validateSchema  string
	validateDoc     string
)

func init() {
	validateCmd.Flags().StringVar(&validateJobs, "jobs", "", "Path to a jobs JSON file")
	validateCmd.Flags().StringVar(&validateResumes, "resumes", "", "Path to a résumés JSON file")
	validateCmd.Flags().StringVar(&validateResume, "resume", "", "Path to a single parsed résumé JSON file")

	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to a JSON Schema file to validate --doc against")
	validateCmd.Flags().StringVar(&validateDoc, "doc", "", "Path to a JSON document to validate against --schema")

	validateCmd.MarkFlagsOneRequired("jobs", "resumes", "resume", "doc")
	validateCmd.MarkFlagsRequiredTogether("schema", "doc")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	checks := []struct {
		path   string
		schema string
	}{
		{validateJobs, embedded.Jobs},
		{validateResumes, embedded.Resumes},
		{validateResume, embedded.ParsedResume},
	}

	var errs []error
	for _, c := range checks {
		if c.path == "" {
			continue
		}
		err := schemas.ValidateFile(c.schema, c.path)
		if err == nil && c.schema == embedded.ParsedResume {
			_, err = experience.LoadParsedResume(c.path)
		}
		if err != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", c.path)
			errs = append(errs, fmt.Errorf("%s: %w", c.path, err))
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", c.path)
	}

	if validateDoc != "" {
		if err := schemas.ValidateJSON(validateSchema, validateDoc); err != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", validateDoc)
			errs = append(errs, fmt.Errorf("%s: %w", validateDoc, err))
		} else {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", validateDoc)
		}
	}
	return errors.Join(errs...)
}
