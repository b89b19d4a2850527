package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/recommend"
)

func TestRecommendCommand_RanksForUser(t *testing.T) {
	out, _, err := execute(t, fileStore("recommend", "--user", janeID)...)
	require.NoError(t, err)

	assert.Contains(t, out, "RECOMMENDED JOBS")
	assert.Contains(t, out, "#1  Senior Go Engineer @ Acme Software")
	assert.Contains(t, out, "#2  Data Analyst @ First Bank")
	assert.Contains(t, out, "#3  Frontend Developer @ Pixel Labs")
	assert.Contains(t, out, "Perfect level match")
	assert.NotContains(t, out, "Closed Role")
}

func TestRecommendCommand_UnknownUserFallsBack(t *testing.T) {
	out, _, err := execute(t, fileStore("recommend", "--user", "7d4b7b1e-6a55-4b0a-9a57-0f0b4a4e9b11", "--limit", "2")...)
	require.NoError(t, err)

	assert.Contains(t, out, "RECENT JOBS (no_profile)")
	assert.Contains(t, out, "#1  Frontend Developer")
	assert.Contains(t, out, "#2  Senior Go Engineer")
	assert.NotContains(t, out, "Data Analyst")
}

func TestRecommendCommand_JSON(t *testing.T) {
	out, _, err := execute(t, fileStore("recommend", "--user", janeID, "--json", "--limit", "1")...)
	require.NoError(t, err)

	var result recommend.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Jobs, 1)
	require.Len(t, result.Scores, 1)
	assert.False(t, result.Fallback)
	assert.Equal(t, "Senior Go Engineer", result.Jobs[0].Title)
	assert.Len(t, result.Scores[0].Factors, 6)
}

func TestRecommendCommand_Explain(t *testing.T) {
	out, _, err := execute(t, fileStore("recommend", "--user", janeID, "--explain", "--limit", "1")...)
	require.NoError(t, err)

	for _, factor := range []string{"skill", "level", "location", "industry", "recency", "remote"} {
		assert.Contains(t, out, factor)
	}
}

func TestRecommendCommand_ResumeFile(t *testing.T) {
	out, _, err := execute(t, "--store", "file", "--jobs-file", testJobs, "recommend", "--resume", testResume)
	require.NoError(t, err)

	assert.Contains(t, out, "#1  Senior Go Engineer")
	assert.Contains(t, out, "Score:")
}

func TestRecommendCommand_XLSX(t *testing.T) {
	report := filepath.Join(t.TempDir(), "recs")

	_, stderr, err := execute(t, fileStore("recommend", "--user", janeID, "--xlsx", report)...)
	require.NoError(t, err)

	assert.Contains(t, stderr, "Report: "+report+".xlsx")
	_, err = os.Stat(report + ".xlsx")
	assert.NoError(t, err)
}

func TestRecommendCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no user or resume", fileStore("recommend"), "at least one of the flags"},
		{"both user and resume", fileStore("recommend", "--user", janeID, "--resume", testResume), "none of the others"},
		{"bad user id", fileStore("recommend", "--user", "not-a-uuid"), "invalid user ID"},
		{"missing jobs file", []string{"--store", "file", "--jobs-file", "/nonexistent/jobs.json", "recommend", "--user", janeID}, "jobs file not found"},
		{"unknown store", []string{"--store", "mongo", "recommend", "--user", janeID}, "oneof"},
		{"missing resume file", fileStore("recommend", "--resume", "/nonexistent/resume.json"), "failed to load resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "error %q should contain %q", err.Error(), tt.wantErr)
		})
	}
}
