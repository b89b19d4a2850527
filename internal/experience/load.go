package experience

import (
	"encoding/json"
	"os"

	"github.com/jonathan/job-recommender/internal/types"
)

// LoadParsedResume loads a single parsed résumé document from a JSON file
// and checks its contact block.
func LoadParsedResume(path string) (*types.ParsedResume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var parsed types.ParsedResume
	if err := json.Unmarshal(content, &parsed); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := parsed.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid parsed resume", Cause: err}
	}

	return &parsed, nil
}
