package localdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/types"
)

const jobColumns = `j.id, j.title, j.description, j.company_id, j.level, j.type,
       j.location, j.salary, j.remote, j.requirements, j.skills, j.benefits,
       j.responsibilities, j.experience_years, j.application_url, j.is_active,
       j.posted_date, j.deadline, j.source, j.created_at, j.updated_at,
       c.id, c.name, c.website, c.industry, c.size, c.location, c.description`

const activeJobsQuery = `SELECT ` + jobColumns + `
  FROM jobs j
  LEFT JOIN companies c ON c.id = j.company_id
 WHERE j.is_active = 1
 ORDER BY j.posted_date IS NULL, j.posted_date DESC, j.created_at DESC`

// ListActiveJobsWithCompany returns every active job with its company joined,
// newest posting first.
func (db *DB) ListActiveJobsWithCompany(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.QueryContext(ctx, activeJobsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return collectJobs(rows)
}

// ListRecentActiveJobs returns the limit most recently posted active jobs.
func (db *DB) ListRecentActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	rows, err := db.pool.QueryContext(ctx, activeJobsQuery+` LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	return collectJobs(rows)
}

// GetJobByID retrieves a job (active or not) by its ID. It returns nil, nil
// when there is no such job.
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	rows, err := db.pool.QueryContext(ctx, `SELECT `+jobColumns+`
  FROM jobs j
  LEFT JOIN companies c ON c.id = j.company_id
 WHERE j.id = ?`, id.String())
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

// DeactivateJob marks a job inactive so it no longer takes part in ranking.
func (db *DB) DeactivateJob(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.ExecContext(ctx,
		`UPDATE jobs SET is_active = 0, updated_at = ? WHERE id = ?`, formatTime(db.now()), id.String())
	if err != nil {
		return fmt.Errorf("failed to deactivate job %s: %w", id, err)
	}
	return nil
}

// UpsertCompany creates a company or replaces the one with the same ID.
func (db *DB) UpsertCompany(ctx context.Context, c *types.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := formatTime(db.now())
	_, err := db.pool.ExecContext(ctx, `
INSERT INTO companies (id, name, website, industry, size, location, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  website = excluded.website,
  industry = excluded.industry,
  size = excluded.size,
  location = excluded.location,
  description = excluded.description,
  updated_at = excluded.updated_at;`,
		c.ID.String(), c.Name, c.Website, c.Industry, c.Size, c.Location, c.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company %s: %w", c.Name, err)
	}
	return nil
}

// InsertJob stores a job, replacing any job with the same ID. The joined
// company, when set, is upserted first.
func (db *DB) InsertJob(ctx context.Context, job *types.JobPosting) error {
	if job.Company != nil {
		if err := db.UpsertCompany(ctx, job.Company); err != nil {
			return err
		}
		job.CompanyID = &job.Company.ID
	}
	if job.CompanyID == nil {
		return fmt.Errorf("failed to insert job %q: company is required", job.Title)
	}
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.Level = job.EffectiveLevel()
	if job.Type == "" {
		job.Type = types.JobTypeFullTime
	}

	skills, err := encodeList(job.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}
	benefits, err := encodeList(job.Benefits)
	if err != nil {
		return fmt.Errorf("failed to encode benefits: %w", err)
	}
	responsibilities, err := encodeList(job.Responsibilities)
	if err != nil {
		return fmt.Errorf("failed to encode responsibilities: %w", err)
	}

	now := db.now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	var remote sql.NullBool
	if job.Remote != nil {
		remote = sql.NullBool{Bool: *job.Remote, Valid: true}
	}

	_, err = db.pool.ExecContext(ctx, `
INSERT OR REPLACE INTO jobs (id, title, description, company_id, level, type, location, salary,
  remote, requirements, skills, benefits, responsibilities, experience_years, application_url,
  is_active, posted_date, deadline, source, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		job.ID.String(), job.Title, job.Description, job.CompanyID.String(), string(job.Level), string(job.Type),
		job.Location, job.Salary, remote, job.Requirements, skills, benefits, responsibilities,
		job.ExperienceYears, job.ApplicationURL, job.IsActive, formatTimePtr(job.PostedDate),
		formatTimePtr(job.Deadline), job.Source, formatTime(job.CreatedAt), formatTime(job.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert job %s: %w", job.ID, err)
	}
	return nil
}

func collectJobs(rows *sql.Rows) ([]types.JobPosting, error) {
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

func scanJob(rows *sql.Rows) (*types.JobPosting, error) {
	var (
		j                                                    types.JobPosting
		id, companyID, level, jobType, createdAt, updatedAt  string
		location, salary, requirements, applicationURL, src  sql.NullString
		skills, benefits, responsibilities                   sql.NullString
		postedDate, deadline                                 sql.NullString
		remote                                               sql.NullBool
		experienceYears                                      sql.NullInt64
		cID, cName, cWebsite, cIndustry, cSize, cLoc, cDescr sql.NullString
	)

	err := rows.Scan(&id, &j.Title, &j.Description, &companyID, &level, &jobType,
		&location, &salary, &remote, &requirements, &skills, &benefits,
		&responsibilities, &experienceYears, &applicationURL, &j.IsActive,
		&postedDate, &deadline, &src, &createdAt, &updatedAt,
		&cID, &cName, &cWebsite, &cIndustry, &cSize, &cLoc, &cDescr)
	if err != nil {
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	if j.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", id, err)
	}
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, fmt.Errorf("invalid company id on job %s: %w", j.ID, err)
	}
	j.CompanyID = &cid
	// an unknown level is left empty and reads back as mid
	j.Level, _ = types.ParseExperienceLevel(level)
	j.Type = types.JobType(jobType)
	j.Location = nullString(location)
	j.Salary = nullString(salary)
	j.Requirements = nullString(requirements)
	j.ApplicationURL = nullString(applicationURL)
	j.Source = nullString(src)
	if remote.Valid {
		r := remote.Bool
		j.Remote = &r
	}
	if experienceYears.Valid {
		y := int(experienceYears.Int64)
		j.ExperienceYears = &y
	}

	if j.Skills, err = decodeList(skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills of job %s: %w", j.ID, err)
	}
	if j.Benefits, err = decodeList(benefits); err != nil {
		return nil, fmt.Errorf("failed to decode benefits of job %s: %w", j.ID, err)
	}
	if j.Responsibilities, err = decodeList(responsibilities); err != nil {
		return nil, fmt.Errorf("failed to decode responsibilities of job %s: %w", j.ID, err)
	}

	if j.PostedDate, err = parseTimePtr(postedDate); err != nil {
		return nil, fmt.Errorf("invalid posted_date on job %s: %w", j.ID, err)
	}
	if j.Deadline, err = parseTimePtr(deadline); err != nil {
		return nil, fmt.Errorf("invalid deadline on job %s: %w", j.ID, err)
	}
	if j.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("invalid created_at on job %s: %w", j.ID, err)
	}
	if j.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("invalid updated_at on job %s: %w", j.ID, err)
	}

	if cID.Valid {
		company := &types.Company{
			Name:        cName.String,
			Website:     nullString(cWebsite),
			Industry:    nullString(cIndustry),
			Size:        nullString(cSize),
			Location:    nullString(cLoc),
			Description: nullString(cDescr),
		}
		if company.ID, err = uuid.Parse(cID.String); err != nil {
			return nil, fmt.Errorf("invalid company id %q: %w", cID.String, err)
		}
		j.Company = company
	}

	return &j, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func encodeList(list []string) (sql.NullString, error) {
	if list == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeList(ns sql.NullString) ([]string, error) {
	if !ns.Valid || ns.String == "" || ns.String == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(ns.String), &list); err != nil {
		return nil, err
	}
	return list, nil
}
