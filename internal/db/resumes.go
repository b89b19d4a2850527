package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-recommender/internal/types"
)

// -----------------------------------------------------------------------------
// Resume Methods
// -----------------------------------------------------------------------------

// GetActiveParsedResume returns the parsed data of the user's active résumé.
// It returns nil, nil when there is no active résumé or it was never parsed.
func (db *DB) GetActiveParsedResume(ctx context.Context, userID uuid.UUID) (*types.ParsedResume, error) {
	var parsedJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT "parsedData" FROM resumes
		 WHERE "userId" = $1 AND "isActive" = true
		 ORDER BY "updatedAt" DESC
		 LIMIT 1`,
		userID,
	).Scan(&parsedJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active resume: %w", err)
	}

	if len(parsedJSON) == 0 || string(parsedJSON) == "null" {
		return nil, nil
	}

	var parsed types.ParsedResume
	if err := json.Unmarshal(parsedJSON, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parsed resume: %w", err)
	}
	return &parsed, nil
}

// InsertResume stores a résumé. When it is active, the user's other résumés
// are deactivated in the same transaction.
func (db *DB) InsertResume(ctx context.Context, r *types.Resume) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	var parsedJSON []byte
	if r.ParsedData != nil {
		var err error
		parsedJSON, err = json.Marshal(r.ParsedData)
		if err != nil {
			return fmt.Errorf("failed to marshal parsed resume: %w", err)
		}
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.IsActive {
		_, err = tx.Exec(ctx,
			`UPDATE resumes SET "isActive" = false, "updatedAt" = now()
			 WHERE "userId" = $1 AND "isActive" = true`,
			r.UserID)
		if err != nil {
			return fmt.Errorf("failed to deactivate previous resumes: %w", err)
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO resumes (id, "userId", "fileName", "parsedData", "isActive")
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING "createdAt", "updatedAt"`,
		r.ID, r.UserID, r.FileName, parsedJSON, r.IsActive,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert resume: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit resume: %w", err)
	}
	return nil
}
