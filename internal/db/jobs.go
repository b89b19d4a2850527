package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-recommender/internal/types"
)

// -----------------------------------------------------------------------------
// Job Methods
// -----------------------------------------------------------------------------

const jobColumns = `j.id, j.title, j.description, j."companyId", j.level::text, j.type::text,
       j.location, j.salary, j.remote, j.requirements, j.skills, j.benefits,
       j.responsibilities, j."experienceYears", j."applicationUrl", j."isActive",
       j."postedDate", j.deadline, j.source, j."createdAt", j."updatedAt",
       c.id, c.name, c.website, c.industry, c.size, c.location, c.description`

const activeJobsQuery = `SELECT ` + jobColumns + `
  FROM jobs j
  LEFT JOIN companies c ON c.id = j."companyId"
 WHERE j."isActive" = true
 ORDER BY j."postedDate" DESC NULLS LAST, j."createdAt" DESC`

// ListActiveJobsWithCompany returns every active job with its company joined,
// newest posting first.
func (db *DB) ListActiveJobsWithCompany(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx, activeJobsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return collectJobs(rows)
}

// ListRecentActiveJobs returns the limit most recently posted active jobs.
func (db *DB) ListRecentActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx, activeJobsQuery+` LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	return collectJobs(rows)
}

// GetJobByID retrieves a job (active or not) by its ID
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+jobColumns+`
  FROM jobs j
  LEFT JOIN companies c ON c.id = j."companyId"
 WHERE j.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	return &jobs[0], nil
}

// InsertJob stores a job posting. A zero ID is generated; a missing level or
// type takes the column default.
func (db *DB) InsertJob(ctx context.Context, job *types.JobPosting) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CompanyID == nil && job.Company != nil {
		job.CompanyID = &job.Company.ID
	}
	if job.CompanyID == nil {
		return fmt.Errorf("failed to insert job %s: company is required", job.ID)
	}

	skills, err := marshalList(job.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	benefits, err := marshalList(job.Benefits)
	if err != nil {
		return fmt.Errorf("failed to marshal benefits: %w", err)
	}
	responsibilities, err := marshalList(job.Responsibilities)
	if err != nil {
		return fmt.Errorf("failed to marshal responsibilities: %w", err)
	}

	level := job.EffectiveLevel()
	jobType := job.Type
	if jobType == "" {
		jobType = types.JobTypeFullTime
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, title, description, "companyId", level, type, location,
		                   salary, remote, requirements, skills, benefits, responsibilities,
		                   "experienceYears", "applicationUrl", "isActive", "postedDate",
		                   deadline, source)
		 VALUES ($1, $2, $3, $4, $5::text::jobs_level_enum, $6::text::jobs_type_enum, $7,
		         $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 RETURNING "createdAt", "updatedAt"`,
		job.ID, job.Title, job.Description, *job.CompanyID, string(level), string(jobType),
		job.Location, job.Salary, job.Remote, job.Requirements, skills, benefits,
		responsibilities, job.ExperienceYears, job.ApplicationURL, job.IsActive,
		job.PostedDate, job.Deadline, job.Source,
	).Scan(&job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert job %s: %w", job.ID, err)
	}
	job.Level = level
	job.Type = jobType
	return nil
}

// DeactivateJob marks a job inactive so it no longer takes part in ranking.
func (db *DB) DeactivateJob(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET "isActive" = false, "updatedAt" = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate job %s: %w", id, err)
	}
	return nil
}

func collectJobs(rows pgx.Rows) ([]types.JobPosting, error) {
	defer rows.Close()

	jobs := []types.JobPosting{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

func scanJob(row pgx.Row) (*types.JobPosting, error) {
	var (
		j                                        types.JobPosting
		companyID                                uuid.UUID
		level, jobType                           string
		skillsJSON, benefitsJSON, respJSON       []byte
		cID                                      *uuid.UUID
		cName                                    *string
		cWebsite, cIndustry, cSize, cLoc, cDescr *string
	)

	err := row.Scan(&j.ID, &j.Title, &j.Description, &companyID, &level, &jobType,
		&j.Location, &j.Salary, &j.Remote, &j.Requirements, &skillsJSON, &benefitsJSON,
		&respJSON, &j.ExperienceYears, &j.ApplicationURL, &j.IsActive,
		&j.PostedDate, &j.Deadline, &j.Source, &j.CreatedAt, &j.UpdatedAt,
		&cID, &cName, &cWebsite, &cIndustry, &cSize, &cLoc, &cDescr)
	if err != nil {
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	j.CompanyID = &companyID
	j.Level = types.ExperienceLevel(level)
	j.Type = types.JobType(jobType)

	if j.Skills, err = unmarshalList(skillsJSON); err != nil {
		return nil, fmt.Errorf("failed to decode skills of job %s: %w", j.ID, err)
	}
	if j.Benefits, err = unmarshalList(benefitsJSON); err != nil {
		return nil, fmt.Errorf("failed to decode benefits of job %s: %w", j.ID, err)
	}
	if j.Responsibilities, err = unmarshalList(respJSON); err != nil {
		return nil, fmt.Errorf("failed to decode responsibilities of job %s: %w", j.ID, err)
	}

	if cID != nil {
		j.Company = &types.Company{
			ID:          *cID,
			Website:     cWebsite,
			Industry:    cIndustry,
			Size:        cSize,
			Location:    cLoc,
			Description: cDescr,
		}
		if cName != nil {
			j.Company.Name = *cName
		}
	}

	return &j, nil
}

// marshalList encodes a string list for a JSONB column; nil stays SQL NULL.
func marshalList(list []string) ([]byte, error) {
	if list == nil {
		return nil, nil
	}
	return json.Marshal(list)
}

// unmarshalList decodes a nullable JSONB string list.
func unmarshalList(data []byte) ([]string, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
