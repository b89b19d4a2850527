// Package profile builds the scoring-ready user profile from a user's active résumé.
package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/experience"
	"github.com/jonathan/job-recommender/internal/types"
)

// Source returns the parsed data of a user's active résumé.
// Implementations return nil, nil when the user has no active résumé or
// the résumé has not been parsed.
type Source interface {
	GetActiveParsedResume(ctx context.Context, userID uuid.UUID) (*types.ParsedResume, error)
}

// Build loads the user's active parsed résumé and derives a profile from it.
// A nil profile with a nil error means the user has no profile.
func Build(ctx context.Context, src Source, userID uuid.UUID) (*types.UserProfile, error) {
	parsed, err := src.GetActiveParsedResume(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active resume for user %s: %w", userID, err)
	}
	if parsed == nil {
		return nil, nil
	}
	return FromParsedResume(parsed), nil
}

// FromParsedResume derives a profile from parsed résumé data.
func FromParsedResume(parsed *types.ParsedResume) *types.UserProfile {
	p := &types.UserProfile{
		Skills:              parsed.Skills,
		Experience:          parsed.Experience,
		Education:           parsed.Education,
		PreferredLevel:      experience.DetermineExperienceLevel(parsed.Experience),
		PreferredIndustries: experience.ExtractIndustries(parsed.Experience),
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if parsed.Contact != nil {
		p.Location = parsed.Contact.Location
	}
	return p
}
