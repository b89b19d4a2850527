package experience

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsedResume_Valid(t *testing.T) {
	path := writeFile(t, `{
		"skills": ["Go", "SQL"],
		"experience": [
			{"company": "Acme Software", "position": "Engineer", "duration": "4 years"}
		],
		"education": [{"institution": "State U", "degree": "BSc", "year": "2016"}],
		"contact": {"name": "Jane", "email": "jane@example.com", "location": "Austin, TX"}
	}`)

	parsed, err := LoadParsedResume(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, parsed.Skills)
	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, types.LevelMid, DetermineExperienceLevel(parsed.Experience))
	assert.Equal(t, "Austin, TX", parsed.Contact.Location)
}

func TestLoadParsedResume_FileNotFound(t *testing.T) {
	_, err := LoadParsedResume(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "failed to read file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadParsedResume_InvalidJSON(t *testing.T) {
	_, err := LoadParsedResume(writeFile(t, `{"skills": [`))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}

func TestLoadParsedResume_BadEmail(t *testing.T) {
	_, err := LoadParsedResume(writeFile(t, `{"contact": {"name": "Jane", "email": "nope"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parsed resume")
}
