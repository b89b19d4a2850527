// Package corpus serves jobs and résumés from JSON files held in memory.
package corpus

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/jonathan/job-recommender/internal/types"
	embedded "github.com/jonathan/job-recommender/schemas"
)

// Store is a read-only in-memory corpus. Jobs are kept in recency order.
type Store struct {
	jobs    []types.JobPosting
	resumes []types.Resume
}

// New builds a store from records already in memory.
func New(jobs []types.JobPosting, resumes []types.Resume) *Store {
	sorted := make([]types.JobPosting, len(jobs))
	copy(sorted, jobs)
	SortByRecency(sorted)
	return &Store{jobs: sorted, resumes: resumes}
}

// Load reads a jobs file and an optional résumés file. Both are validated
// against the embedded schemas before decoding.
func Load(jobsPath, resumesPath string) (*Store, error) {
	jobs, err := LoadJobs(jobsPath)
	if err != nil {
		return nil, err
	}

	var resumes []types.Resume
	if resumesPath != "" {
		if resumes, err = LoadResumes(resumesPath); err != nil {
			return nil, err
		}
	}
	return New(jobs, resumes), nil
}

// LoadJobs reads and validates a jobs file.
func LoadJobs(path string) ([]types.JobPosting, error) {
	var jobs []types.JobPosting
	if err := loadDocument(path, embedded.Jobs, &jobs); err != nil {
		return nil, err
	}
	for i := range jobs {
		if c := jobs[i].Company; c != nil {
			if c.ID == uuid.Nil {
				c.ID = CompanyID(c.Name)
			}
			jobs[i].CompanyID = &c.ID
		}
	}
	return jobs, nil
}

// companyNamespace seeds name-derived company IDs.
var companyNamespace = uuid.MustParse("5b0f3a52-8a7e-4f0e-9a43-1f3c6e1d2b7a")

// CompanyID derives a stable ID from a company name so jobs that share a
// company without naming an ID end up under the same record.
func CompanyID(name string) uuid.UUID {
	return uuid.NewSHA1(companyNamespace, []byte(name))
}

// LoadResumes reads and validates a résumés file.
func LoadResumes(path string) ([]types.Resume, error) {
	var resumes []types.Resume
	if err := loadDocument(path, embedded.Resumes, &resumes); err != nil {
		return nil, err
	}
	for i := range resumes {
		if p := resumes[i].ParsedData; p != nil {
			if err := p.Validate(); err != nil {
				return nil, &LoadError{Path: path, Message: "invalid parsed resume for " + resumes[i].FileName, Cause: err}
			}
		}
	}
	return resumes, nil
}

func loadDocument(path, schemaName string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	if err := schemas.Validate(schemaName, content); err != nil {
		return &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}
	if err := json.Unmarshal(content, out); err != nil {
		return &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}
	return nil
}

// SortByRecency orders jobs by posted date descending (missing dates last),
// then creation time descending. The sort is stable.
func SortByRecency(jobs []types.JobPosting) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].NewerThan(&jobs[j])
	})
}

// Jobs returns every job in the store, active or not.
func (s *Store) Jobs() []types.JobPosting {
	out := make([]types.JobPosting, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Resumes returns every résumé in the store.
func (s *Store) Resumes() []types.Resume {
	out := make([]types.Resume, len(s.resumes))
	copy(out, s.resumes)
	return out
}

// ListActiveJobsWithCompany returns active jobs, newest first.
func (s *Store) ListActiveJobsWithCompany(ctx context.Context) ([]types.JobPosting, error) {
	return s.active(ctx, -1)
}

// ListRecentActiveJobs returns the limit newest active jobs.
func (s *Store) ListRecentActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	return s.active(ctx, limit)
}

func (s *Store) active(ctx context.Context, limit int) ([]types.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []types.JobPosting{}
	for _, j := range s.jobs {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if j.IsActive {
			out = append(out, j)
		}
	}
	return out, nil
}

// GetActiveParsedResume returns the parsed data of the user's active résumé,
// or nil, nil when there is none. If several are flagged active the most
// recently updated wins.
func (s *Store) GetActiveParsedResume(ctx context.Context, userID uuid.UUID) (*types.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var best *types.Resume
	for i := range s.resumes {
		r := &s.resumes[i]
		if r.UserID != userID || !r.IsActive {
			continue
		}
		if best == nil || r.UpdatedAt.After(best.UpdatedAt) {
			best = r
		}
	}
	if best == nil {
		return nil, nil
	}
	return best.ParsedData, nil
}
