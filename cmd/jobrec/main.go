// Package main provides the jobrec CLI for ranking job postings against résumés.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "jobrec",
	Short:         "Job recommendation engine",
	Long:          "jobrec ranks active job postings against a user's résumé and reports career insights and in-demand skills.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configFile  string
	storeName   string
	databaseURL string
	sqlitePath  string
	jobsFile    string
	resumesFile string
	verbose     bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to YAML config file")
	flags.StringVar(&storeName, "store", "", "Storage backend: postgres, sqlite or file")
	flags.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (default: $DATABASE_URL)")
	flags.StringVar(&sqlitePath, "sqlite-path", "", "Path to SQLite database file")
	flags.StringVar(&jobsFile, "jobs-file", "", "Path to jobs JSON file (file store)")
	flags.StringVar(&resumesFile, "resumes-file", "", "Path to résumés JSON file (file store)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
