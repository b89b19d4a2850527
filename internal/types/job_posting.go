// Package types provides type definitions for structured data used throughout the job recommender.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel is the seniority tier of a job or a candidate.
// Tiers are totally ordered: entry < junior < mid < senior < lead < executive.
type ExperienceLevel string

// Experience level constants
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

// ExperienceLevels lists every tier in ascending order.
var ExperienceLevels = []ExperienceLevel{
	LevelEntry,
	LevelJunior,
	LevelMid,
	LevelSenior,
	LevelLead,
	LevelExecutive,
}

// Ordinal returns the 1-based position of the level (entry=1 … executive=6),
// or 0 when the level is not one of the known tiers.
func (l ExperienceLevel) Ordinal() int {
	for i, level := range ExperienceLevels {
		if level == l {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether l is a known tier.
func (l ExperienceLevel) Valid() bool {
	return l.Ordinal() > 0
}

// ParseExperienceLevel parses a tier name case-insensitively.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	level := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("unknown experience level %q", s)
	}
	return level, nil
}

// JobType is the employment kind of a posting.
type JobType string

// Job type constants
const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
)

// Company is the employer attached to a job posting
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Website     *string   `json:"website,omitempty"`
	Industry    *string   `json:"industry,omitempty"`
	Size        *string   `json:"size,omitempty"` // e.g. "11-50", "500+"
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// JobPosting represents one open position
type JobPosting struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	Company     *Company   `json:"company,omitempty"` // joined

	Level    ExperienceLevel `json:"level"`
	Type     JobType         `json:"type"`
	Location *string         `json:"location,omitempty"`
	Salary   *string         `json:"salary,omitempty"`
	Remote   *bool           `json:"remote,omitempty"`

	Requirements     *string  `json:"requirements,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	ExperienceYears  *int     `json:"experience_years,omitempty"`
	ApplicationURL   *string  `json:"application_url,omitempty"`

	IsActive   bool       `json:"is_active"`
	PostedDate *time.Time `json:"posted_date,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Source     *string    `json:"source,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnmarshalJSON decodes a posting, treating a missing is_active as true.
func (j *JobPosting) UnmarshalJSON(data []byte) error {
	type plain JobPosting
	p := plain{IsActive: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*j = JobPosting(p)
	return nil
}

// EffectiveLevel returns the posting's level, defaulting to mid for an
// unset or unknown value.
func (j *JobPosting) EffectiveLevel() ExperienceLevel {
	if j.Level.Valid() {
		return j.Level
	}
	return LevelMid
}

// IsRemote reports whether the posting is explicitly flagged remote.
func (j *JobPosting) IsRemote() bool {
	return j.Remote != nil && *j.Remote
}

// LocationText returns the location or "" when absent.
func (j *JobPosting) LocationText() string {
	if j.Location == nil {
		return ""
	}
	return *j.Location
}

// CompanyName returns the joined company's name or "" when not loaded.
func (j *JobPosting) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}

// Industry returns the joined company's industry or "" when unknown.
func (j *JobPosting) Industry() string {
	if j.Company == nil || j.Company.Industry == nil {
		return ""
	}
	return *j.Company.Industry
}

// NewerThan orders postings by recency: posted date descending with missing
// dates last, then creation time descending.
func (j *JobPosting) NewerThan(other *JobPosting) bool {
	switch {
	case j.PostedDate != nil && other.PostedDate == nil:
		return true
	case j.PostedDate == nil && other.PostedDate != nil:
		return false
	case j.PostedDate != nil && !j.PostedDate.Equal(*other.PostedDate):
		return j.PostedDate.After(*other.PostedDate)
	}
	return j.CreatedAt.After(other.CreatedAt)
}
