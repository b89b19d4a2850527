// Package schemas embeds the JSON Schemas for job and résumé documents.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	Jobs         = "jobs.schema.json"
	Resumes      = "resumes.schema.json"
	ParsedResume = "parsed_resume.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Names lists every embedded schema.
func Names() []string {
	return []string{Jobs, Resumes, ParsedResume}
}

// Load returns the raw bytes of an embedded schema.
func Load(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}
