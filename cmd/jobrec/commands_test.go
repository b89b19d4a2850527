package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsCommand(t *testing.T) {
	out, _, err := execute(t, fileStore("insights", "--user", janeID)...)
	require.NoError(t, err)

	assert.Contains(t, out, "CAREER INSIGHTS")
	assert.Contains(t, out, "senior (6.0 years)")
	assert.Contains(t, out, "Technology")
	assert.Contains(t, out, "Skills to learn:")
}

func TestInsightsCommand_NoResume(t *testing.T) {
	_, _, err := execute(t, fileStore("insights", "--user", "7d4b7b1e-6a55-4b0a-9a57-0f0b4a4e9b11")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active resume found")
}

func TestInsightsCommand_MissingUser(t *testing.T) {
	_, _, err := execute(t, fileStore("insights")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestTopSkillsCommand(t *testing.T) {
	out, _, err := execute(t, fileStore("top-skills", "--json", "--limit", "3")...)
	require.NoError(t, err)

	var skills []string
	require.NoError(t, json.Unmarshal([]byte(out), &skills))
	require.Len(t, skills, 3)
	assert.Equal(t, "SQL", skills[0])
	assert.NotContains(t, skills, "COBOL")
}

func TestTopSkillsCommand_Text(t *testing.T) {
	out, _, err := execute(t, fileStore("top-skills")...)
	require.NoError(t, err)
	assert.Contains(t, out, " 1. SQL")
}

func TestTopSkillsCommand_NegativeLimit(t *testing.T) {
	_, _, err := execute(t, fileStore("top-skills", "--limit", "-1")...)
	assert.Error(t, err)
}

func TestImportCommand_SQLiteRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobrec.db")

	out, _, err := execute(t, "--store", "sqlite", "--sqlite-path", dbPath,
		"import", "--jobs", testJobs, "--resumes", testResumes)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 companies, 4 jobs, 1 resumes into sqlite store")

	out, _, err = execute(t, "--store", "sqlite", "--sqlite-path", dbPath, "recommend", "--user", janeID)
	require.NoError(t, err)
	assert.Contains(t, out, "RECOMMENDED JOBS")
	assert.Contains(t, out, "#1  Senior Go Engineer @ Acme Software")
	assert.NotContains(t, out, "Closed Role")
}

func TestImportCommand_RejectsFileStore(t *testing.T) {
	_, _, err := execute(t, fileStore("import", "--jobs", testJobs)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import requires a postgres or sqlite store")
}

func TestImportCommand_InvalidJobs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobrec.db")
	_, _, err := execute(t, "--store", "sqlite", "--sqlite-path", dbPath,
		"import", "--jobs", filepath.Join("testdata", "invalid_jobs.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load jobs")
}

func TestImportCommand_MissingIsActiveImportsActive(t *testing.T) {
	dir := t.TempDir()
	jobsPath := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(jobsPath, []byte(`[{"title":"Go Dev","company":{"name":"Acme"},"skills":["Go"]}]`), 0o644))
	dbPath := filepath.Join(dir, "jobrec.db")

	out, _, err := execute(t, "--store", "sqlite", "--sqlite-path", dbPath, "import", "--jobs", jobsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 companies, 1 jobs, 0 resumes into sqlite store")

	out, _, err = execute(t, "--store", "sqlite", "--sqlite-path", dbPath, "top-skills", "--json")
	require.NoError(t, err)
	var skills []string
	require.NoError(t, json.Unmarshal([]byte(out), &skills))
	assert.Equal(t, []string{"Go"}, skills)
}

func TestValidateCommand(t *testing.T) {
	out, _, err := execute(t, "validate", "--jobs", testJobs, "--resumes", testResumes, "--resume", testResume)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+testJobs)
	assert.Contains(t, out, "✓ "+testResumes)
	assert.Contains(t, out, "✓ "+testResume)
}

func TestValidateCommand_Invalid(t *testing.T) {
	invalid := filepath.Join("testdata", "invalid_jobs.json")
	out, _, err := execute(t, "validate", "--jobs", invalid)
	require.Error(t, err)
	assert.Contains(t, out, "✗ "+invalid)
}

func TestValidateCommand_SchemaFile(t *testing.T) {
	schema := filepath.Join("..", "..", "schemas", "jobs.schema.json")
	invalid := filepath.Join("testdata", "invalid_jobs.json")

	out, _, err := execute(t, "validate", "--schema", schema, "--doc", testJobs)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+testJobs)

	out, _, err = execute(t, "validate", "--schema", schema, "--doc", invalid)
	require.Error(t, err)
	assert.Contains(t, out, "✗ "+invalid)

	_, _, err = execute(t, "validate", "--doc", testJobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestValidateCommand_NoInput(t *testing.T) {
	_, _, err := execute(t, "validate")
	assert.Error(t, err)
}
