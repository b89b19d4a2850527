package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	embedded "github.com/jonathan/job-recommender/schemas"
)

const validJobs = `[
  {
    "title": "Senior Go Engineer",
    "description": "Build services",
    "company": {"name": "Acme Software", "industry": "Technology"},
    "level": "senior",
    "type": "full_time",
    "location": "Austin, TX",
    "remote": true,
    "skills": ["Go", "PostgreSQL"],
    "is_active": true,
    "posted_date": "2024-06-01T00:00:00Z"
  },
  {
    "title": "Analyst",
    "company": {"name": "First Bank"},
    "skills": null,
    "posted_date": null
  }
]`

const validResumes = `[
  {
    "user_id": "0f5c2a40-2f43-4b7e-9f55-3b1f77a1b2c3",
    "file_name": "cv.pdf",
    "is_active": true,
    "parsed_data": {
      "skills": ["Go"],
      "experience": [{"company": "Acme", "position": "Dev", "duration": "2 years"}],
      "contact": {"name": "Jane", "location": "Austin, TX"}
    }
  },
  {
    "user_id": "0f5c2a40-2f43-4b7e-9f55-3b1f77a1b2c3",
    "file_name": "old.pdf",
    "parsed_data": null
  }
]`

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T: %v", err, err)
	require.NotEmpty(t, validationErr.Errors)
	return validationErr.Errors
}

func TestValidate_Jobs(t *testing.T) {
	assert.NoError(t, Validate(embedded.Jobs, []byte(validJobs)))
	assert.NoError(t, Validate(embedded.Jobs, []byte(`[]`)))
}

func TestValidate_JobsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an array", `{"title": "x"}`},
		{"missing company", `[{"title": "x"}]`},
		{"unknown level", `[{"title": "x", "company": {"name": "A"}, "level": "principal"}]`},
		{"skills not strings", `[{"title": "x", "company": {"name": "A"}, "skills": [1, 2]}]`},
		{"bad date", `[{"title": "x", "company": {"name": "A"}, "posted_date": "last week"}]`},
		{"negative years", `[{"title": "x", "company": {"name": "A"}, "experience_years": -1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(embedded.Jobs, []byte(tt.doc))
			require.Error(t, err)
			fieldErrors(t, err)
		})
	}
}

func TestValidate_ResumesResolvesParsedResumeRef(t *testing.T) {
	assert.NoError(t, Validate(embedded.Resumes, []byte(validResumes)))

	bad := `[{"user_id": "0f5c2a40-2f43-4b7e-9f55-3b1f77a1b2c3", "file_name": "cv.pdf",
	          "parsed_data": {"experience": [{"position": "Dev"}]}}]`
	err := Validate(embedded.Resumes, []byte(bad))
	require.Error(t, err)
	fieldErrors(t, err)
}

func TestValidate_ParsedResume(t *testing.T) {
	assert.NoError(t, Validate(embedded.ParsedResume, []byte(`{"skills": ["Go"], "contact": null}`)))

	err := Validate(embedded.ParsedResume, []byte(`{"skills": "Go"}`))
	require.Error(t, err)
	errs := fieldErrors(t, err)
	assert.Equal(t, "skills", errs[0].Field)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(embedded.Jobs, []byte(`[{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(validJobs), 0o644))

	assert.NoError(t, ValidateFile(embedded.Jobs, path))

	err := ValidateFile(embedded.Jobs, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateJSON_OnDisk(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`), 0o644))

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name": "x"}`), 0o644))
	assert.NoError(t, ValidateJSON(schemaPath, good))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"age": 3}`), 0o644))
	err := ValidateJSON(schemaPath, bad)
	require.Error(t, err)
	fieldErrors(t, err)

	err = ValidateJSON(filepath.Join(dir, "nonexistent_schema.json"), good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "jobs.schema.json",
		Errors: []FieldError{
			{Field: "0.title", Message: "is required"},
			{Field: "1.level", Message: "must be one of the following"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation against jobs.schema.json failed")
	assert.Contains(t, msg, "0.title")
	assert.Contains(t, msg, "1.level")

	assert.Contains(t, (&ValidationError{}).Error(), "validation failed")
}
