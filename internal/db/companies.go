package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/types"
)

// -----------------------------------------------------------------------------
// Company Methods
// -----------------------------------------------------------------------------

// UpsertCompany creates a company or updates it in place when the ID exists.
// A zero ID is generated.
func (db *DB) UpsertCompany(ctx context.Context, c *types.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO companies (id, name, website, industry, size, location, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		     name = EXCLUDED.name,
		     website = EXCLUDED.website,
		     industry = EXCLUDED.industry,
		     size = EXCLUDED.size,
		     location = EXCLUDED.location,
		     description = EXCLUDED.description,
		     "updatedAt" = now()`,
		c.ID, c.Name, c.Website, c.Industry, c.Size, c.Location, c.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company %s: %w", c.Name, err)
	}
	return nil
}
