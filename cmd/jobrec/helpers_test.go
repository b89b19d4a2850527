package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const janeID = "0f5c2a40-2f43-4b7e-9f55-3b1f77a1b2c3"

var (
	testJobs    = filepath.Join("testdata", "jobs.json")
	testResumes = filepath.Join("testdata", "resumes.json")
	testResume  = filepath.Join("testdata", "resume.json")
)

// execute runs the root command in-process with fresh flag values and
// returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "JOBREC_STORE", "JOBREC_SQLITE_PATH", "JOBREC_JOBS_FILE", "JOBREC_RESUMES_FILE"} {
		t.Setenv(key, "")
	}
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func fileStore(args ...string) []string {
	return append([]string{"--store", "file", "--jobs-file", testJobs, "--resumes-file", testResumes}, args...)
}
