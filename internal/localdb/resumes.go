package localdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/types"
)

// GetActiveParsedResume returns the parsed data of the user's active résumé.
// It returns nil, nil when there is no active résumé or it was never parsed.
func (db *DB) GetActiveParsedResume(ctx context.Context, userID uuid.UUID) (*types.ParsedResume, error) {
	var parsed sql.NullString
	err := db.pool.QueryRowContext(ctx, `
SELECT parsed_data FROM resumes
 WHERE user_id = ? AND is_active = 1
 ORDER BY updated_at DESC
 LIMIT 1;`, userID.String()).Scan(&parsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active resume: %w", err)
	}

	if !parsed.Valid || parsed.String == "" || parsed.String == "null" {
		return nil, nil
	}

	var data types.ParsedResume
	if err := json.Unmarshal([]byte(parsed.String), &data); err != nil {
		return nil, fmt.Errorf("failed to decode parsed resume: %w", err)
	}
	return &data, nil
}

// InsertResume stores a résumé. When it is active, the user's other résumés
// are deactivated in the same transaction.
func (db *DB) InsertResume(ctx context.Context, r *types.Resume) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	var parsed sql.NullString
	if r.ParsedData != nil {
		data, err := json.Marshal(r.ParsedData)
		if err != nil {
			return fmt.Errorf("failed to marshal parsed resume: %w", err)
		}
		parsed = sql.NullString{String: string(data), Valid: true}
	}

	now := db.now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	tx, err := db.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if r.IsActive {
		_, err = tx.ExecContext(ctx, `
UPDATE resumes SET is_active = 0, updated_at = ?
 WHERE user_id = ? AND is_active = 1 AND id != ?;`,
			formatTime(now), r.UserID.String(), r.ID.String())
		if err != nil {
			return fmt.Errorf("failed to deactivate previous resumes: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
INSERT OR REPLACE INTO resumes (id, user_id, file_name, parsed_data, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		r.ID.String(), r.UserID.String(), r.FileName, parsed, r.IsActive,
		formatTime(r.CreatedAt), formatTime(r.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert resume: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit resume: %w", err)
	}
	return nil
}
